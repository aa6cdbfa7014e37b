// Package key defines the closed catalog of physical keyboard keys.
//
// A Code identifies one physical key independent of layout, modifier
// state, or the device that reported it. Codes have stable names for
// use in layout files and recorded tapes (FromName, String) and a
// partial mapping to printable characters (Char). The catalog order is
// stable within a session, so numeric Code values can be persisted by
// consumers that control both ends.
package key
