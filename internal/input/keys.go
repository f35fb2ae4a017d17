package input

import "fmt"

// Evdev codes of the keys usable as lanes, from linux/input-event-codes.h
var keyCodes = map[rune]uint16{
	'1': 2, '2': 3, '3': 4, '4': 5, '5': 6, '6': 7, '7': 8, '8': 9, '9': 10, '0': 11,
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20, 'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34, 'h': 35, 'j': 36, 'k': 37, 'l': 38, ';': 39,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48, 'n': 49, 'm': 50, ',': 51, '.': 52, '/': 53,
	' ': 57,
}

// KeyLanes maps each rune of keys to a lane, the first being lane 1.
func KeyLanes(keys string) map[rune]int {
	lanes := map[rune]int{}
	for i, r := range []rune(keys) {
		lanes[r] = i + 1
	}
	return lanes
}

// CodeLanes is KeyLanes for evdev key codes.
func CodeLanes(keys string) (map[uint16]int, error) {
	lanes := map[uint16]int{}
	for i, r := range []rune(keys) {
		code, ok := keyCodes[r]
		if !ok {
			return nil, fmt.Errorf("no key code for %q", r)
		}
		lanes[code] = i + 1
	}
	return lanes, nil
}
