// Package main provides the CLI entrypoint for plotkit.
package main

func main() {
	Execute()
}
