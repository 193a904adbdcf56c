/*
Package transnet turns GTFS stop times into an undirected transport network
graph: stops are nodes, consecutive stops of a trip are joined by a segment
weighted with the travel time in whole minutes.

	summary, err := transnet.GenerateGraph(transnet.Options{
	    Sources:    []string{"./feeds/rer", "./feeds/metro.zip"},
	    OutputPath: "network.net",
	    Format:     "pajek",
	    Encoding:   "UTF-8",
	})

# Trips

A row with stop_sequence 0 starts a trip. Every other row is joined to the row
just before it in the same source. Pairs where either time is at hour 24 or
later produce no segment, and so do pairs whose arrival comes before the
previous departure. When several trips connect the same two stops, the
last one read sets the travel time.

# Stop attributes

After a source's stop times, rows of its stops.txt whose stop_id starts with
"StopPoint:" (configurable) give their node a stop_name, lat and long.
*/
package transnet
