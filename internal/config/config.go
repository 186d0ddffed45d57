// Package config holds the fixed settings of cdock-inhibit. Nothing is read from flags, files or
// the environment.
package config

import (
	"github.com/MatthiasKunnen/cdock-inhibit/internal/logging"
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/dock"
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/inhibit"
	"github.com/MatthiasKunnen/cdock-inhibit/pkg/udev"
)

const (
	// DockVendorID and DockProductID identify the Dell dock this program was written for.
	DockVendorID  = "413c"
	DockProductID = "b06f"

	InhibitWho = "cdock-inhibit"
	InhibitWhy = "Docked via USB-C"
)

type Config struct {
	Matcher dock.Matcher
	Request dock.Request
	Group   udev.Group
	Logging logging.Config
}

func Default() Config {
	return Config{
		Matcher: dock.Matcher{
			VendorID:  DockVendorID,
			ProductID: DockProductID,
		},
		Request: dock.Request{
			Who:  InhibitWho,
			Why:  InhibitWhy,
			Mode: inhibit.ModeBlock,
			What: []inhibit.What{inhibit.WhatSleep, inhibit.WhatHandleLidSwitch},
		},
		Group:   udev.GroupUdev,
		Logging: logging.DefaultConfig(),
	}
}
