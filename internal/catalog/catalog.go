// Package catalog holds the immutable baseline content shipped with the
// platform: courses with their lessons and quiz banks, internships and
// certificates. Accessors hand out deep clones; the baseline itself is never
// mutated.
package catalog

import "github.com/arkan-dev/eduverse-api/internal/models"

// Open-licensed sample videos used by the demo catalog.
const (
	sampleVideo1 = "https://storage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"
	sampleVideo2 = "https://storage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4"
	sampleVideo3 = "https://storage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4"
)

// Courses returns a deep clone of the baseline course set, in catalog order.
func Courses() []models.Course {
	out := make([]models.Course, len(baselineCourses))
	for i, course := range baselineCourses {
		out[i] = course.Clone()
	}
	return out
}

// CourseByID returns a clone of a single baseline course.
func CourseByID(id string) (models.Course, bool) {
	for _, course := range baselineCourses {
		if course.ID == id {
			return course.Clone(), true
		}
	}
	return models.Course{}, false
}

// Internships returns the static internship listings.
func Internships() []models.Internship {
	out := make([]models.Internship, len(baselineInternships))
	copy(out, baselineInternships)
	for i := range out {
		out[i].Tags = append([]string(nil), baselineInternships[i].Tags...)
	}
	return out
}

// Certificates returns the static certificate records.
func Certificates() []models.Certificate {
	out := make([]models.Certificate, len(baselineCertificates))
	copy(out, baselineCertificates)
	return out
}

// CertificateByID returns a single certificate record.
func CertificateByID(id string) (models.Certificate, bool) {
	for _, cert := range baselineCertificates {
		if cert.ID == id {
			return cert, true
		}
	}
	return models.Certificate{}, false
}
