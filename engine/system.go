package engine

// System is one per-frame pass over the session
// Systems run in ascending Priority; equal priorities keep registration order
type System interface {
	Priority() int
	Update(s *Session, in *Input)
}
