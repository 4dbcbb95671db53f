// Command clumioctl is the operator CLI of clumio-bot. It runs the same
// services as the HTTP server against the configured Clumio account and
// restore audit store.
package main

import (
	"fmt"
	"os"
)

func main() {
	c := &cli{build: buildApp}

	err := c.rootCmd().Execute()
	if closeErr := c.close(); closeErr != nil {
		fmt.Fprintln(os.Stderr, closeErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
