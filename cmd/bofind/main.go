package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/agrzeslak/bohelper"
	"github.com/agrzeslak/bohelper/hexstr"
)

func main() {
	haystack := flag.String("haystack", "", "haystack as hex text")
	needle := flag.String("needle", "", "needle as hex text")
	endianness := flag.String("endianness", "little", "haystack endianness (big|little)")
	needleEndianness := flag.String("needle-endianness", "", "needle endianness, defaults to the haystack's")
	flag.Parse()

	e, err := hexstr.ParseEndianness(*endianness)
	if err != nil {
		log.Fatal(err)
	}
	ne := e
	if *needleEndianness != "" {
		ne, err = hexstr.ParseEndianness(*needleEndianness)
		if err != nil {
			log.Fatal(err)
		}
	}

	h, err := hexstr.ParseHex(*haystack, e, e)
	if err != nil {
		log.Fatal(fmt.Errorf("haystack: %w", err))
	}
	n, err := hexstr.ParseHex(*needle, ne, ne)
	if err != nil {
		log.Fatal(fmt.Errorf("needle: %w", err))
	}

	fmt.Println(bohelper.FormatOffsets(h.Offsets(n)))
}
