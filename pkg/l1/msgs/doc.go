// Package msgs provides L1 protocol support and all message schemas.
package msgs

// L1 protocol is communicated between the turtle simulator (L1 controller)
// and drivers (L2), using planar motion primitives: Twist commands in,
// Pose events out, plus the simulator services Spawn, TeleportAbsolute
// and Kill.
//
// Producer: L1 controller
// Consumer: L2 driver
