// Command pegdump compiles one of a handful of canned demonstration
// patterns and either dumps its bytecode or runs it against an input
// string, printing whether it matched and any captures. Grounded on
// clarete/langlang/go/cmd/main.go's flag+log.Fatal idiom.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/nsf/libzbs/peg"
)

var demos = map[string]peg.Pattern{
	"hello":     peg.Str("hello"),
	"digit":     peg.Range('0', '9'),
	"digits":    peg.Range('0', '9').Star().Then(peg.Str(";")),
	"optional":  peg.Str(":").Then(peg.Str("hello").Opt()).Then(peg.Str(":")),
	"non-six":   peg.Range('0', '9').Diff(peg.Str("6")).Plus().Then(peg.Str(";")),
	"key-value": peg.Range('a', 'z').Plus().Capture().Then(peg.Str("=")).Then(peg.Range('a', 'z').Plus().Capture()).Then(peg.Str(";")),
}

func main() {
	var (
		pattern = flag.String("pattern", "hello", "demonstration pattern to compile (see -list)")
		input   = flag.String("input", "", "input string to match the pattern against")
		dump    = flag.Bool("dump", false, "print the compiled bytecode instead of matching")
		list    = flag.Bool("list", false, "list available demonstration patterns and exit")
	)
	flag.Parse()

	if *list {
		for name := range demos {
			fmt.Println(name)
		}
		return
	}

	p, ok := demos[*pattern]
	if !ok {
		log.Fatalf("unknown pattern %q, see -list", *pattern)
	}

	prog, err := peg.Compile(p)
	if err != nil {
		log.Fatalf("compile error: %v", err)
	}

	if *dump {
		text, err := prog.Dump()
		if err != nil {
			log.Fatalf("disassemble error: %v", err)
		}
		fmt.Print(text)
		return
	}

	matched, captures, err := prog.Capture([]byte(*input))
	if err != nil {
		log.Fatalf("match error: %v", err)
	}
	fmt.Printf("match: %v\n", matched)
	for _, c := range captures {
		fmt.Printf("capture: %q\n", c)
	}
}
