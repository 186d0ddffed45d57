package inhibit_test

import (
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/inhibit"
	"log"
)

func Example() {
	inhibitor, err := inhibit.New()
	if err != nil {
		log.Fatalf("Failed to initialize inhibitor: %v", err)
	}
	defer inhibitor.Close()

	lidLock, err := inhibitor.Inhibit(
		"Name of program",
		"Reason of blocking",
		inhibit.ModeBlock,
		inhibit.WhatSleep,
		inhibit.WhatHandleLidSwitch,
	)
	if err != nil {
		log.Fatalf("Unable to acquire lid switch inhibition lock: %v", err)
	}

	locks, err := inhibitor.ListInhibitors()
	if err != nil {
		log.Printf("Unable to list inhibitors: %v", err)
	}
	for _, l := range locks {
		log.Printf("%s is inhibiting %s (%s): %s", l.Who, l.What, l.Mode, l.Why)
	}

	// Closing the lock allows the system to sleep on lid close again.
	err = lidLock.Close()
	if err != nil {
		log.Printf("Failed to release inhibitor lock: %v", err)
	}
}
