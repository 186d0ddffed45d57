// Package udev lists USB devices and listens for their hotplug events through libudev.
//
// [Source] adapts both to a [dock.EventSource].
package udev
