package telemetry

import "sync"

type Report struct {
	Level  string
	ID     string
	Params []any
}

// Recorder implements API by keeping every report in memory, tests use it to
// assert that a component reported what it should have.
type Recorder struct {
	mutex   sync.Mutex
	reports []Report
}

func (r *Recorder) add(level, id string, params []any) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.reports = append(r.reports, Report{Level: level, ID: id, Params: params})
}

func (r *Recorder) ReportBroken(id string, params ...any) {
	r.add("broken", id, params)
}

func (r *Recorder) ReportWarning(id string, params ...any) {
	r.add("warning", id, params)
}

func (r *Recorder) ReportDebug(msg string, params ...any) {
	r.add("debug", msg, params)
}

func (r *Recorder) ReportCount(id string, count int64) {
	r.add("count", id, []any{count})
}

// Reports returns a copy of every report with the given level.
func (r *Recorder) Reports(level string) []Report {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var out []Report
	for _, report := range r.reports {
		if report.Level == level {
			out = append(out, report)
		}
	}
	return out
}
