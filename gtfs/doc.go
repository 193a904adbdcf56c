/*
Package gtfs reads the two static GTFS files the network generator needs:
stop_times.txt and stops.txt.

A source is either a feed directory or a GTFS zip archive:

	src, err := gtfs.OpenSource("./feeds/idfm")
	if err != nil {
	    return err
	}
	defer src.Close()

	r, err := src.StopTimes()
	if err != nil {
	    return err
	}
	defer r.Close()
	for {
	    st, err := r.Next()
	    if err == io.EOF {
	        break
	    }
	    if err != nil {
	        return err
	    }
	    // st.Arrival, st.Departure, st.StopID, st.Sequence
	}

# Column layout

Columns are read by position, not by header name:

  - stop_times.txt: 1 arrival_time, 2 departure_time, 3 stop_id, 4 stop_sequence
  - stops.txt: 0 stop_id, 1 stop_name, 3 stop_lat, 4 stop_lon

The header of stop_times.txt is skipped. stops.txt rows are all returned, header
included; callers filter on the stop_id prefix.

Times are kept as text on the records and parsed on demand with ParseClock,
so a malformed time only fails when it is actually used.
*/
package gtfs
