package profstore

import (
	"fmt"
	"io"

	"github.com/modelprof/modelprof/schema"
)

// PrintStoreStatus prints store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		return
	}
	fmt.Fprintf(w, "Saved Profiles: %d\n", status.ProfileCount)
	fmt.Fprintf(w, "Saved Metrics: %d\n", status.MetricCount)
}

// PrintStoreListing prints one line per saved profile.
func PrintStoreListing(w io.Writer, listing []schema.StoredProfile) {
	if len(listing) == 0 {
		fmt.Fprintln(w, "No saved profiles")
		return
	}
	for _, sp := range listing {
		fmt.Fprintf(w, "%s\t%s\t%d metrics\t%s\n",
			sp.Name, sp.Backend, sp.MetricCount, sp.SavedAt.Format("2006-01-02 15:04:05"))
	}
}
