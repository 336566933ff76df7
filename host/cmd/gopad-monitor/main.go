// gopad-monitor tails the macropad's serial console, logs device events,
// and optionally bridges key presses to MIDI notes or an MQTT broker.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gopad/host/events"
	"gopad/host/serial"
)

var (
	device     = flag.String("device", "/dev/ttyACM0", "Serial device path")
	baud       = flag.Int("baud", 115200, "Baud rate (ignored for USB CDC)")
	verbose    = flag.Bool("verbose", false, "Print non-event console lines too")
	midiOut    = flag.String("midi", "", "Bridge key events to this MIDI output port (substring match)")
	mqttBroker = flag.String("mqtt", "", "Bridge events to this MQTT broker (e.g. tcp://localhost:1883)")
)

func main() {
	flag.Parse()
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	var bridges []bridge
	if *midiOut != "" {
		b, err := newMIDIBridge(*midiOut)
		if err != nil {
			log.Fatalf("midi: %v", err)
		}
		defer b.Close()
		bridges = append(bridges, b)
	}
	if *mqttBroker != "" {
		b, err := newMQTTBridge(*mqttBroker)
		if err != nil {
			log.Fatalf("mqtt: %v", err)
		}
		defer b.Close()
		bridges = append(bridges, b)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println()
		log.Println("shutting down")
		for _, b := range bridges {
			b.Close()
		}
		os.Exit(0)
	}()

	malformed := 0
	for {
		if err := monitor(bridges, &malformed); err != nil {
			log.Printf("serial: %v, retrying in 2s", err)
			time.Sleep(2 * time.Second)
		}
	}
}

// bridge forwards parsed events somewhere else.
type bridge interface {
	Handle(ev events.Event) error
	Close() error
}

// monitor opens the port and processes lines until a read error.
func monitor(bridges []bridge, malformed *int) error {
	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = 0 // block; the device streams continuously
	port, err := serial.Open(cfg)
	if err != nil {
		return err
	}
	defer port.Close()
	log.Printf("connected to %s", *device)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := scanner.Text()
		if !events.IsEventLine(line) {
			if *verbose && line != "" {
				log.Printf("console: %s", line)
			}
			continue
		}

		ev, err := events.Parse(line, time.Now())
		if err != nil {
			*malformed++
			log.Printf("skipping malformed line (%d so far): %v", *malformed, err)
			continue
		}

		log.Println(ev)
		for _, b := range bridges {
			if err := b.Handle(ev); err != nil {
				log.Printf("bridge: %v", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return fmt.Errorf("port closed")
}
