// Package main is the entry point for the sysglance telemetry server.
package main

func main() {
	Execute()
}
