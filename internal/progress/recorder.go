package progress

// Recorder is a Reporter that keeps every call, for tests and dry runs.
type Recorder struct {
	Started  bool
	Total    int
	Updates  []Snapshot
	Finished bool
	Err      error
}

func (r *Recorder) Start(total int) {
	r.Started = true
	r.Total = total
}

func (r *Recorder) Update(s Snapshot) {
	r.Updates = append(r.Updates, s)
}

func (r *Recorder) Finish(err error) {
	r.Finished = true
	r.Err = err
}
