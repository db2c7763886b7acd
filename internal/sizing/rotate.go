package sizing

// RotateType deterministically assigns a file type to a 1-based file index
// by cycling through the enabled list. The caller guarantees the list is
// non-empty.
func RotateType(index int64, enabled []FileType) FileType {
	return enabled[int((index-1)%int64(len(enabled)))]
}
