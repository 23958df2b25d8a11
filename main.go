package main

import (
	"fmt"
	"ipregistrar/cmd"
	"os"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("registrar run into an error: %s\n", err)
		os.Exit(1)
	}
}
