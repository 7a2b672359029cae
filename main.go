package main

import (
	"github.com/srappl/composer/cmd"
)

func main() {
	cmd.Execute()
}
