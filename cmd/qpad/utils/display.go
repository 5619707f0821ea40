// Package utils contains utility functions for the qpa daemon.
package utils

import (
	"fmt"
)

// DisplayLogo prints the qpa ASCII logo with version information
func DisplayLogo(version string) {
	fmt.Println()
	fmt.Println(` ░░░░░░░░░░░░░░░
 ░█▀█░█▀█░█▀█░░
 ░█░█░█▀▀░█▀█░░
 ░▀▀█░▀░░░▀░▀░░
 ░░░░░░░░░░░░░░░`)
	fmt.Printf("\n qpad v%s - Quantum Brute-Force Duration Service\n", version)
	fmt.Println(" Parse, format and rescale password cracking estimates")
	fmt.Println()
}
