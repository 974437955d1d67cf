package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/agrzeslak/bohelper/hexstr"
)

func main() {
	text := flag.String("text", "", "text to encode as hex")
	hexText := flag.String("hex", "", "hex text to convert (alternative to -text)")
	from := flag.String("from", "little", "endianness the input is declared in (big|little)")
	to := flag.String("to", "little", "endianness of the output (big|little)")
	asInt := flag.Bool("int", false, "additionally print the value as an unsigned integer")
	flag.Parse()

	f, err := hexstr.ParseEndianness(*from)
	if err != nil {
		log.Fatal(err)
	}
	t, err := hexstr.ParseEndianness(*to)
	if err != nil {
		log.Fatal(err)
	}

	var seq hexstr.Sequence
	switch {
	case *text != "":
		seq = hexstr.EncodeText(*text, f, t)
	case *hexText != "":
		seq, err = hexstr.ParseHex(*hexText, f, t)
		if err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("one of -text or -hex is required")
	}

	fmt.Println(seq.HexString(t))
	if *asInt {
		if v, ok := seq.Uint64(); ok {
			fmt.Println(v)
		} else {
			fmt.Println("value does not fit into 64 bits")
		}
	}
}
