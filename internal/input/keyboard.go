package input

import (
	"fmt"

	"github.com/eiannone/keyboard"
)

// Keyboard reads the terminal. A terminal only reports key strokes, so
// every stroke is a press followed at once by a release.
type Keyboard struct {
	Lanes map[rune]int
}

func (k *Keyboard) Open(events chan<- Event) (func(), error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	go func() {
		for key := range keys {
			if nil != key.Err {
				continue
			}
			k.translate(key.Rune, key.Key, events)
		}
	}()
	return func() { keyboard.Close() }, nil
}

func (k *Keyboard) translate(r rune, key keyboard.Key, events chan<- Event) {
	if key == keyboard.KeyEsc || key == keyboard.KeyCtrlC {
		events <- Event{Quit: true}
		return
	}
	if key == keyboard.KeySpace {
		r = ' '
	}
	lane, ok := k.Lanes[r]
	if !ok {
		return
	}
	events <- Event{Lane: lane, Pressed: true}
	events <- Event{Lane: lane, Pressed: false}
}
