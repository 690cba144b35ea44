// SPDX-License-Identifier: EPL-2.0

package oscillator

import (
	"fmt"
	"strings"
)

// Note is a pitch in hertz multiplied by 100, so A4 (440.00 Hz) is 44000.
type Note uint32

// Equal-tempered pitches from C0 to B8. An "s" marks a sharp.
const (
	// Octave 0
	C0  Note = 1635
	Cs0 Note = 1732
	D0  Note = 1835
	Ds0 Note = 1945
	E0  Note = 2060
	F0  Note = 2183
	Fs0 Note = 2312
	G0  Note = 2450
	Gs0 Note = 2596
	A0  Note = 2750
	As0 Note = 2914
	B0  Note = 3087

	// Octave 1
	C1  Note = 3270
	Cs1 Note = 3465
	D1  Note = 3671
	Ds1 Note = 3889
	E1  Note = 4120
	F1  Note = 4365
	Fs1 Note = 4625
	G1  Note = 4900
	Gs1 Note = 5191
	A1  Note = 5500
	As1 Note = 5827
	B1  Note = 6174

	// Octave 2
	C2  Note = 6541
	Cs2 Note = 6930
	D2  Note = 7342
	Ds2 Note = 7778
	E2  Note = 8241
	F2  Note = 8731
	Fs2 Note = 9250
	G2  Note = 9800
	Gs2 Note = 10383
	A2  Note = 11000
	As2 Note = 11654
	B2  Note = 12347

	// Octave 3
	C3  Note = 13081
	Cs3 Note = 13859
	D3  Note = 14683
	Ds3 Note = 15556
	E3  Note = 16481
	F3  Note = 17461
	Fs3 Note = 18500
	G3  Note = 19600
	Gs3 Note = 20765
	A3  Note = 22000
	As3 Note = 23308
	B3  Note = 24694

	// Octave 4
	C4  Note = 26163
	Cs4 Note = 27718
	D4  Note = 29366
	Ds4 Note = 31113
	E4  Note = 32963
	F4  Note = 34923
	Fs4 Note = 36999
	G4  Note = 39200
	Gs4 Note = 41530
	A4  Note = 44000
	As4 Note = 46616
	B4  Note = 49388

	// Octave 5
	C5  Note = 52325
	Cs5 Note = 55437
	D5  Note = 58733
	Ds5 Note = 62225
	E5  Note = 65925
	F5  Note = 69846
	Fs5 Note = 73999
	G5  Note = 78399
	Gs5 Note = 83061
	A5  Note = 88000
	As5 Note = 93233
	B5  Note = 98777

	// Octave 6
	C6  Note = 104650
	Cs6 Note = 110873
	D6  Note = 117466
	Ds6 Note = 124451
	E6  Note = 131851
	F6  Note = 139691
	Fs6 Note = 147998
	G6  Note = 156798
	Gs6 Note = 166122
	A6  Note = 176000
	As6 Note = 186466
	B6  Note = 197553

	// Octave 7
	C7  Note = 209300
	Cs7 Note = 221746
	D7  Note = 234932
	Ds7 Note = 248900
	E7  Note = 263700
	F7  Note = 279383
	Fs7 Note = 295996
	G7  Note = 313596
	Gs7 Note = 332240
	A7  Note = 352000
	As7 Note = 372931
	B7  Note = 395107

	// Octave 8
	C8  Note = 418601
	Cs8 Note = 443492
	D8  Note = 469863
	Ds8 Note = 497800
	E8  Note = 527400
	F8  Note = 558765
	Fs8 Note = 591991
	G8  Note = 627193
	Gs8 Note = 664488
	A8  Note = 704000
	As8 Note = 745862
	B8  Note = 790213
)

var allNotes = [...]Note{
	C0, Cs0, D0, Ds0, E0, F0, Fs0, G0, Gs0, A0, As0, B0,
	C1, Cs1, D1, Ds1, E1, F1, Fs1, G1, Gs1, A1, As1, B1,
	C2, Cs2, D2, Ds2, E2, F2, Fs2, G2, Gs2, A2, As2, B2,
	C3, Cs3, D3, Ds3, E3, F3, Fs3, G3, Gs3, A3, As3, B3,
	C4, Cs4, D4, Ds4, E4, F4, Fs4, G4, Gs4, A4, As4, B4,
	C5, Cs5, D5, Ds5, E5, F5, Fs5, G5, Gs5, A5, As5, B5,
	C6, Cs6, D6, Ds6, E6, F6, Fs6, G6, Gs6, A6, As6, B6,
	C7, Cs7, D7, Ds7, E7, F7, Fs7, G7, Gs7, A7, As7, B7,
	C8, Cs8, D8, Ds8, E8, F8, Fs8, G8, Gs8, A8, As8, B8,
}

var pitchClasses = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Hz returns the pitch in hertz.
func (n Note) Hz() float64 {
	return float64(n) / 100.0
}

// String returns the scientific pitch name ("A4", "C#5") for the named
// constants and the frequency otherwise.
func (n Note) String() string {
	for i, v := range allNotes {
		if v == n {
			return fmt.Sprintf("%s%d", pitchClasses[i%12], i/12)
		}
	}

	return fmt.Sprintf("%.2fHz", n.Hz())
}

// ParseNote accepts names such as "A4", "c#5" or "Cs5".
func ParseNote(name string) (Note, bool) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) < 2 {
		return 0, false
	}

	octave := name[len(name)-1]
	if octave < '0' || octave > '8' {
		return 0, false
	}

	pitch := strings.Replace(name[:len(name)-1], "S", "#", 1)
	for i, pc := range pitchClasses {
		if pc == pitch {
			return allNotes[int(octave-'0')*12+i], true
		}
	}

	return 0, false
}
