package gtfs

// File names inside a source
const (
	StopTimesFile = "stop_times.txt"
	StopsFile     = "stops.txt"
)

// StopTime is one row of stop_times.txt
type StopTime struct {
	Arrival   string // HH:MM:SS, hour may exceed 23
	Departure string // HH:MM:SS, hour may exceed 23
	StopID    string
	Sequence  int // 0 marks the start of a trip
	Line      int
}

// StopRow is one row of stops.txt. Name, Lat and Long are empty when the row has
// fewer columns than the layout expects; Columns tells the two cases apart.
type StopRow struct {
	ID      string
	Name    string
	Lat     string
	Long    string
	Columns int
	Line    int
}

// Complete reports whether the row carries every column the layout reads
func (r StopRow) Complete() bool { return r.Columns >= stopColumns }
