package routers

import (
	"serenia-service/internal/app/delivery/http/middlewares"
	"serenia-service/internal/app/services/core/badges"
	"serenia-service/internal/app/services/core/journals"
	"serenia-service/internal/app/services/core/moods"
	"serenia-service/internal/app/services/core/patients"
	"serenia-service/internal/app/services/core/scores"
	"serenia-service/internal/app/services/core/submissions"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	patientController *patients.PatientController,
	submissionController *submissions.SubmissionController,
	moodController *moods.MoodController,
	journalController *journals.JournalController,
	scoreController *scores.ScoreController,
	badgeController *badges.BadgeController,
) {
	router.Post("/", patientController.CreatePatient)
	router.Get("/", patientController.FindAllPatients)
	router.Get("/{patient_id}", patientController.FindPatientByID)
	router.Get("/{patient_id}/dashboard", patientController.BuildPatientDashboard)

	router.Get("/{patient_id}/submissions", submissionController.FindSubmissionsByPatientID)
	router.Get("/{patient_id}/score", scoreController.FindScoreByPatientID)
	router.Get("/{patient_id}/badges", badgeController.FindBadgesByPatientID)

	router.Post("/{patient_id}/moods", moodController.CreateMoodEntry)
	router.Get("/{patient_id}/moods", moodController.FindMoodEntriesByPatientID)
	router.Put("/{patient_id}/moods/{mood_entry_id}", moodController.UpdateMoodEntry)
	router.Delete("/{patient_id}/moods/{mood_entry_id}", moodController.DeleteMoodEntryByID)

	router.Post("/{patient_id}/journals", journalController.CreateJournal)
	router.Get("/{patient_id}/journals", journalController.FindJournalsByPatientID)
	router.Get("/{patient_id}/journals/{journal_entry_id}", journalController.FindJournalByID)
	router.Put("/{patient_id}/journals/{journal_entry_id}", journalController.UpdateJournal)
	router.Delete("/{patient_id}/journals/{journal_entry_id}", journalController.DeleteJournalByID)
}
