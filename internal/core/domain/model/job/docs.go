// Package job contains the job posting aggregate served under /api/jobs.
//
// A Job carries its editable Details (title, type, description, company,
// location, salary, optional application deadline), an immutable posted date
// and a Status that only moves from Open to Closed. Postings are closed either
// explicitly or by the scheduled expiry task once IsExpired reports true.
//
// All values are built through constructors (NewJob, RestoreJob, NewCompany);
// zero values fail Validate so repositories never persist half-built postings.
package job
