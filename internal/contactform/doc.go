// Package contactform implements the lead-capture form of the contact page.
//
// A Controller owns the four form fields and the submission status of one
// contact page view:
//
//	idle ──submit──▶ submitting ──affirmative──▶ success ──5s──▶ idle
//	                     │
//	                     └──failure──▶ error ──submit──▶ submitting
//
// A submit is accepted only from idle or error and only when every field is
// non-empty. Each accepted submit issues exactly one Relay.Send. While the
// request is in flight further submits and edits are refused, which is how a
// single view never has two requests outstanding. Edits are also refused
// while the success panel shows, so the reset always lands on empty fields. Close ends the view and
// cancels the pending success reset so it can never touch discarded state.
package contactform
