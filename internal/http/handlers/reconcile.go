package handlers

import "net/http"

// ReconcileRun triggers one payment-due sweep on demand. The scheduled
// sweeper runs the same code path every morning; this endpoint exists for
// operators who need a pass outside the schedule.
func (a *App) ReconcileRun(w http.ResponseWriter, r *http.Request) {
	result, err := a.Sweeper.Run(r.Context())
	if err != nil {
		a.respondDomainErr(w, r, err, "reconciliation sweep")
		return
	}
	a.json(w, http.StatusOK, map[string]int{
		"checked": result.Checked,
		"emitted": result.Emitted,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	})
}
