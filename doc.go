// Package samevol answers one question reliably: do two filesystem paths
// reside on the same Windows storage volume?
//
// Drive letters are not enough for that. A directory can be a mount point
// for another volume (a VHD, a second partition, a junction target), so
// two paths under the same letter may still live on different storage. The
// package builds a table of every mount point the system knows, mapping
// each to the opaque volume GUID path behind it, and resolves query paths
// against that table with longest prefix matching.
//
//	table := samevol.New()
//	if table.SameVolume(source, target) {
//		// rename is enough, no cross volume copy needed
//	}
//
// The table is built lazily on first use from live system state and kept
// for the lifetime of the Table handle; call Rebuild after volumes are
// mounted or unmounted. All methods are safe for concurrent use.
//
// On platforms other than Windows the table never builds and every
// comparison degrades to false.
package samevol
