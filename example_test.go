package argot_test

import (
	"fmt"

	argot "github.com/SimonDaKappa/go-argot"
)

func Example() {
	var verbose bool
	var num int
	var files []string

	p := argot.NewParser()
	p.Config().Program("demo")
	p.Add(&verbose, "-v", "--verbose").Help("enable verbose output")
	p.Add(&num, "--num", "-n").NArgs(1).Help("a number to process")
	p.Add(&files, "file").Help("input files")

	res := p.Parse([]string{"-v", "--num", "-5", "a.txt", "b.txt"})
	if !res.Ok() {
		return
	}

	fmt.Println(verbose, num, files)
	// Output: true -5 [a.txt b.txt]
}
