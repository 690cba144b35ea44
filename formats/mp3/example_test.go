// SPDX-License-Identifier: EPL-2.0

package mp3_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/ddsgen/audio"
	"github.com/ik5/ddsgen/formats/mp3"
	"github.com/ik5/ddsgen/wavetable"
)

// Example registers the decoder and imports a wavetable from an MP3 file.
func Example() {
	reg := audio.NewRegistry()
	reg.Register("mp3", mp3.Decoder{})

	dec, _ := reg.Get("mp3")

	f, err := os.Open("cycle.mp3")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		log.Fatal(err)
	}

	table, err := wavetable.FromSource(src)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(len(table.Table()))
}
