package table

// wireAction mirrors lr.Action in a form stable across this package's
// versions, independent of how the lr package happens to lay its struct
// out in memory.
type wireAction struct {
	Kind       uint8
	State      int32
	Production int32
}

// wirePayload is the portion of a cached table encoded through rezi: the
// two dense matrices. Everything needed to validate the stream before
// trusting this payload (magic, version, dimensions, build id) lives in the
// fixed header instead, see header.go.
type wirePayload struct {
	Actions [][]wireAction
	Gotos   [][]int32
}
