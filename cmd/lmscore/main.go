// Command lmscore scores database content against yes/no questions
// using a language model.
package main

import "github.com/ahrav/go-lmscore/internal/cli"

func main() {
	cli.Execute()
}
