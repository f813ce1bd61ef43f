// Command test-hook is a manual test for the keyboard hook and key resolver.
// Run it and type; each key-down is printed with its codes, modifiers,
// resolved token and window title.
// Press Ctrl+C to exit.
//
// Usage:
//
//	go run ./cmd/test-hook [--prefix Cntrl+]
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/chaz8081/keysession/internal/hook"
	"github.com/chaz8081/keysession/internal/keys"
)

func main() {
	prefix := flag.String("prefix", keys.DefaultControlPrefix, "marker prepended to keys typed with control held")
	flag.Parse()

	resolver := keys.NewResolver(keys.USLayout{}, *prefix)
	fmt.Println("Listening for key presses...")
	fmt.Println("Press Ctrl+C to exit.")

	listener := hook.NewListener(func(ev keys.RawKeyEvent, title string) {
		fmt.Printf("vk=%#04x scan=%#04x ctrl=%-5t shift=%-5t caps=%-5t token=%q window=%q\n",
			ev.VirtualKey, ev.ScanCode,
			ev.Modifiers.ControlHeld, ev.Modifiers.ShiftEffective, ev.Modifiers.CapsLockActive,
			resolver.Resolve(ev), title)
	}, hook.NewTitleSource("<unknown window>"))

	// Handle Ctrl+C
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		fmt.Println("\nShutting down...")
		listener.Stop()
	}()

	// Blocks until stopped
	if err := listener.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "hook: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Done.")
	os.Exit(0)
}
