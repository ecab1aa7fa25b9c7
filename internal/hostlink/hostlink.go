// Package hostlink is the serial boundary with the host application: one
// status line out per tick or window completion, single-character commands
// in ('S' start recording, 'E' end recording).
package hostlink

import (
	"bufio"
	"fmt"
	"io"
	"log"

	serial "github.com/jacobsa/go-serial/serial"
)

// Command is a single-character instruction from the host.
type Command byte

const (
	CmdStartRecording Command = 'S'
	CmdEndRecording   Command = 'E'
)

// Link is an open serial connection to the host.
type Link struct {
	port     io.ReadWriteCloser
	commands chan Command
}

// Open opens the serial port and starts the command reader.
func Open(portName string, baudRate uint) (*Link, error) {
	opts := serial.OpenOptions{
		PortName:              portName,
		BaudRate:              baudRate,
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("hostlink: open %s: %w", portName, err)
	}
	log.Printf("hostlink: serial port opened on %s at %d baud", portName, baudRate)

	l := &Link{
		port:     port,
		commands: make(chan Command, 16),
	}
	go l.readCommands()
	return l, nil
}

// WriteLine sends one status line to the host.
func (l *Link) WriteLine(line string) error {
	if _, err := io.WriteString(l.port, line+"\n"); err != nil {
		return fmt.Errorf("hostlink: write: %w", err)
	}
	return nil
}

// Commands returns the channel of host commands. The channel is closed when
// the port read loop ends.
func (l *Link) Commands() <-chan Command {
	return l.commands
}

// Close closes the serial port, which also stops the command reader.
func (l *Link) Close() error {
	return l.port.Close()
}

// readCommands reads the port byte by byte and forwards the recognized
// single-character commands. Anything else (line noise, echoes) is ignored.
func (l *Link) readCommands() {
	defer close(l.commands)

	reader := bufio.NewReader(l.port)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			log.Printf("hostlink: command read loop ended: %v", err)
			return
		}
		switch Command(b) {
		case CmdStartRecording, CmdEndRecording:
			select {
			case l.commands <- Command(b):
			default:
				// consumer is behind one full buffer of commands; drop
			}
		}
	}
}
