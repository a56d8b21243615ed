package main

import (
	"documio/cmd/documio/cmd"
)

func main() {
	cmd.Execute()
}
