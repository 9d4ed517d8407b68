// Command regctl is a command-line front end to the registry core
// (pkg/registry): one subcommand per request in spec.md §6.3 except
// close_key, operating on
// a Registry built fresh for the process and optionally seeded from a
// bootstrap manifest (see config.go).
package main

func main() {
	execute()
}
