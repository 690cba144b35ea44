// SPDX-License-Identifier: EPL-2.0

package vorbis_test

import (
	"fmt"
	"log"
	"os"

	"github.com/ik5/ddsgen/formats/vorbis"
	"github.com/ik5/ddsgen/wavetable"
)

// ExampleDecoder_Decode imports an Ogg Vorbis cycle as a wavetable.
func ExampleDecoder_Decode() {
	f, err := os.Open("cycle.ogg")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	src, err := vorbis.Decoder{}.Decode(f)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d Hz, %d channels\n", src.SampleRate(), src.Channels())

	table, err := wavetable.FromSource(src)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(table.Sample(0))
}
