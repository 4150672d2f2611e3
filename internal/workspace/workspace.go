// Package workspace maps between the group/monitor/workspace triple hywoma
// exposes to clients and the flat numeric workspace id Hyprland addresses.
//
// The mapping is positional arithmetic in base 10: each coordinate occupies
// one decimal digit, so it generalizes to any group, monitor, and workspace
// count up to ten each without a lookup table. Decoding performs no
// validation; any id >= 1 maps mechanically even if Hyprland has no such
// workspace.
package workspace

// Workspace identifies a virtual desktop by its coordinates. Workspace and
// Monitor are 1-based; Group is 0-based in both representations.
type Workspace struct {
	Workspace uint64
	Monitor   uint64
	Group     uint64
}

// FromID decodes a flat Hyprland workspace id into its coordinates.
// Exact inverse of ID for ids 1 through 1000; higher group digits truncate.
func FromID(id uint64) Workspace {
	id--
	w := Workspace{}
	w.Workspace = id%10 + 1
	id /= 10
	w.Monitor = id%10 + 1
	id /= 10
	w.Group = id % 10
	return w
}

// ID encodes the coordinates into the flat Hyprland workspace id.
func (w Workspace) ID() uint64 {
	return (w.Workspace - 1) + 10*(w.Monitor-1) + 100*w.Group + 1
}
