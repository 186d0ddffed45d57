// Package dock keeps an inhibitor lock in step with the presence of a docking station.
//
// A [Controller] reads a snapshot of the attached devices from an [EventSource], then consumes
// its hotplug events one at a time. While a device accepted by the [Matcher] is attached, the
// controller holds exactly one lock obtained from a [LockProvider].
package dock
