package analysis

// DisplayState is everything a presentation layer shows for the most recent
// analysis. Values are never mutated; Next returns a replacement.
type DisplayState struct {
	Report  *Report
	Row     *Row
	Message string
	Level   Level
}

// Next returns the state after an analysis finished. A success replaces the
// result wholesale; a failure keeps the previous result untouched and only
// sets the message.
func (s DisplayState) Next(report *Report, err error) DisplayState {
	if err != nil {
		return DisplayState{
			Report:  s.Report,
			Row:     s.Row,
			Message: UserMessage(err),
			Level:   LevelOf(err),
		}
	}
	if report == nil {
		return s
	}

	r := *report
	row := r.Row()
	return DisplayState{Report: &r, Row: &row}
}

// Empty reports whether no analysis has succeeded yet.
func (s DisplayState) Empty() bool {
	return s.Row == nil
}
