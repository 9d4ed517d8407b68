package regtypes

// RootID identifies one of the seven predefined top-level keys (spec.md
// §4.6/§6.2). Values mirror the well-known HKEY_* ordinals.
type RootID uint32

const (
	HKEYClassesRoot      RootID = 0x80000000
	HKEYCurrentUser      RootID = 0x80000001
	HKEYLocalMachine     RootID = 0x80000002
	HKEYUsers            RootID = 0x80000003
	HKEYPerformanceData  RootID = 0x80000004
	HKEYCurrentConfig    RootID = 0x80000005
	HKEYDynData          RootID = 0x80000006
)

// RootName returns the canonical textual root name used in paths and .reg
// section headers (spec.md §6.2), or "" if id is not a predefined root.
func RootName(id RootID) string {
	switch id {
	case HKEYClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case HKEYCurrentUser:
		return "HKEY_CURRENT_USER"
	case HKEYLocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case HKEYUsers:
		return "HKEY_USERS"
	case HKEYPerformanceData:
		return "HKEY_PERFORMANCE_DATA"
	case HKEYCurrentConfig:
		return "HKEY_CURRENT_CONFIG"
	case HKEYDynData:
		return "HKEY_DYN_DATA"
	default:
		return ""
	}
}

// RootIDByName is the inverse of RootName, used when a textual path begins
// with a root name instead of an already-resolved handle.
func RootIDByName(name string) (RootID, bool) {
	for _, id := range AllRoots {
		if RootName(id) == name {
			return id, true
		}
	}
	return 0, false
}

// AllRoots enumerates the seven predefined roots in a fixed, stable order
// (spec.md §4.6 "Fixed-size table of the seven predefined top-level keys").
var AllRoots = [7]RootID{
	HKEYClassesRoot,
	HKEYCurrentUser,
	HKEYLocalMachine,
	HKEYUsers,
	HKEYPerformanceData,
	HKEYCurrentConfig,
	HKEYDynData,
}
