// Package agent runs the decision loop for a browser-automation session.
//
// A Session answers one question per step: what actions should run next
// on this page for this task? It consults the pattern cache first and
// falls back to the planning model on a miss, caching whatever the model
// produces. Reported outcomes feed back into pattern confidence, so the
// cache adapts as the site or the model's plans change.
//
// The planning model, the DOM, and action execution are all collaborators
// behind interfaces; this package only decides and records.
//
//	store := patterns.NewStore(patterns.DefaultPolicy())
//	session, err := agent.NewSession(store, planner)
//	if err != nil {
//	    return err
//	}
//
//	actions, err := session.NextActions(ctx, pageURL, task)
//	// ... execute actions ...
//	session.ReportOutcome(ctx, pageURL, label, true)
package agent
