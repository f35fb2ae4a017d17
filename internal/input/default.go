package input

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"syscall"

	"git.lost.host/meutraa/lanes/internal/log"
)

// From linux/input-event-codes.h
const (
	evKey = 0x01

	keyReleased = 0
	keyPressed  = 1
	keyRepeated = 2
)

type keyEvent struct {
	Time  syscall.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

// Event is a press or release of a lane.
type Event struct {
	Lane    int
	Pressed bool
	Quit    bool // The player asked to stop
}

// Device reads key events from a Linux evdev device and maps key codes to
// lanes. Codes not in Lanes are dropped, autorepeat is ignored.
type Device struct {
	Lanes map[uint16]int
	Log   *log.Logger
}

func (d *Device) Open(path string, events chan<- Event) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("unable to open input device: %w", err)
	}
	go func() {
		defer file.Close()
		if err := d.Read(file, events); nil != err {
			d.Log.Errorf("unable to read keyboard input: %v", err)
		}
	}()
	return nil
}

// Read decodes events from r until it ends.
func (d *Device) Read(r io.Reader, events chan<- Event) error {
	var ev keyEvent
	for {
		if err := binary.Read(r, binary.LittleEndian, &ev); nil != err {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if ev.Type != evKey || ev.Value == keyRepeated {
			continue
		}
		if ev.Code == escCode && ev.Value == keyPressed {
			events <- Event{Quit: true}
			continue
		}
		lane, ok := d.Lanes[ev.Code]
		if !ok {
			continue
		}
		events <- Event{Lane: lane, Pressed: ev.Value == keyPressed}
	}
}

// KEY_ESC
const escCode = 1
