package main

import (
	"log"
	"time"

	"gde/config"
	"gde/database"
	"gde/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds the database with demo accounts, catalog and planning data.
// The whole seed runs in one transaction: any failure rolls everything back.
func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	db := database.Database.Db

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	// Skip if already populated
	if err := db.First(&models.User{}).Error; err == nil {
		log.Println("Database already contains data, seed skipped.")
		return
	}

	if err := db.Transaction(seed); err != nil {
		log.Fatalf("Seed failed, rolled back: %v", err)
	}

	log.Println("Database seeded successfully.")
	log.Println("Test accounts: admin@gde-musique.fr/admin123, prof.piano@gde-musique.fr/prof123, alice@example.com/eleve123")
}

func hashPassword(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}
	return string(hashed)
}

func seed(tx *gorm.DB) error {
	// Users
	admin := models.User{Email: "admin@gde-musique.fr", Username: "admin", Password: hashPassword("admin123"),
		FirstName: "Jean", LastName: "Dupont", Role: models.RoleAdmin, IsActive: true}
	profPiano := models.User{Email: "prof.piano@gde-musique.fr", Username: "marie_leclerc", Password: hashPassword("prof123"),
		FirstName: "Marie", LastName: "Leclerc", Role: models.RoleTeacher, IsActive: true}
	profGuitare := models.User{Email: "prof.guitare@gde-musique.fr", Username: "pierre_martin", Password: hashPassword("prof123"),
		FirstName: "Pierre", LastName: "Martin", Role: models.RoleTeacher, IsActive: true}
	alice := models.User{Email: "alice@example.com", Username: "alice_dubois", Password: hashPassword("eleve123"),
		FirstName: "Alice", LastName: "Dubois", Role: models.RoleStudent, IsActive: true}
	lucas := models.User{Email: "lucas@example.com", Username: "lucas_bernard", Password: hashPassword("eleve123"),
		FirstName: "Lucas", LastName: "Bernard", Role: models.RoleStudent, IsActive: true}
	emma := models.User{Email: "emma@example.com", Username: "emma_rousseau", Password: hashPassword("eleve123"),
		FirstName: "Emma", LastName: "Rousseau", Role: models.RoleStudent, IsActive: true}

	for _, user := range []*models.User{&admin, &profPiano, &profGuitare, &alice, &lucas, &emma} {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
	}

	// Instruments
	piano := models.Instrument{Name: "Piano", Description: "Instrument à clavier, roi des instruments", ImageURL: "/static/images/instruments/piano.jpg"}
	guitare := models.Instrument{Name: "Guitare", Description: "Instrument à cordes pincées, acoustique ou électrique", ImageURL: "/static/images/instruments/guitare.jpg"}
	chant := models.Instrument{Name: "Chant", Description: "Technique vocale et interprétation", ImageURL: "/static/images/instruments/chant.jpg"}
	batterie := models.Instrument{Name: "Batterie", Description: "Percussion, rythme et coordination", ImageURL: "/static/images/instruments/batterie.jpg"}
	violon := models.Instrument{Name: "Violon", Description: "Instrument à cordes frottées", ImageURL: "/static/images/instruments/violon.jpg"}
	solfege := models.Instrument{Name: "Solfège", Description: "Théorie musicale et formation de l'oreille", ImageURL: "/static/images/instruments/solfege.jpg"}

	for _, instrument := range []*models.Instrument{&piano, &guitare, &chant, &batterie, &violon, &solfege} {
		if err := tx.Create(instrument).Error; err != nil {
			return err
		}
	}

	// Declared instruments per student
	if err := tx.Model(&alice).Association("Instruments").Append(&piano, &solfege); err != nil {
		return err
	}
	if err := tx.Model(&lucas).Association("Instruments").Append(&guitare, &batterie); err != nil {
		return err
	}
	if err := tx.Model(&emma).Association("Instruments").Append(&chant, &piano); err != nil {
		return err
	}

	// Courses
	pianoDebutant := models.Course{Title: "Piano Débutant", Description: "Découverte du piano et des bases de la musique",
		InstrumentID: piano.ID, Level: "Débutant", ImageURL: "/static/images/courses/piano-debutant.jpg"}
	pianoInter := models.Course{Title: "Piano Intermédiaire", Description: "Approfondissement de la technique et du répertoire",
		InstrumentID: piano.ID, Level: "Intermédiaire", ImageURL: "/static/images/courses/piano-inter.jpg"}
	guitareDebutant := models.Course{Title: "Guitare Débutant", Description: "Les bases de la guitare acoustique et électrique",
		InstrumentID: guitare.ID, Level: "Débutant", ImageURL: "/static/images/courses/guitare-debutant.jpg"}
	guitareAvance := models.Course{Title: "Guitare Avancé", Description: "Techniques avancées et improvisation",
		InstrumentID: guitare.ID, Level: "Avancé", ImageURL: "/static/images/courses/guitare-avance.jpg"}
	techniqueVocale := models.Course{Title: "Technique Vocale", Description: "Travail de la voix et de l'interprétation",
		InstrumentID: chant.ID, Level: "Tous niveaux", ImageURL: "/static/images/courses/chant.jpg"}

	for _, course := range []*models.Course{&pianoDebutant, &pianoInter, &guitareDebutant, &guitareAvance, &techniqueVocale} {
		if err := tx.Create(course).Error; err != nil {
			return err
		}
	}

	// Teaching assignments
	if err := tx.Model(&profPiano).Association("TaughtCourses").Append(&pianoDebutant, &pianoInter); err != nil {
		return err
	}
	if err := tx.Model(&profGuitare).Association("TaughtCourses").Append(&guitareDebutant, &guitareAvance); err != nil {
		return err
	}

	// Lessons
	lessons := []models.Lesson{
		{CourseID: pianoDebutant.ID, Title: "Introduction au Piano", Description: "Découverte de l'instrument et position des mains",
			SongName:    "Ode à la Joie - Beethoven",
			SongHistory: "L'Ode à la Joie est un hymne composé par Ludwig van Beethoven en 1824 pour sa 9ème symphonie. C'est devenue l'hymne européen.",
			ChordHelp:   "Cette mélodie simple se joue avec la main droite.\nNotes: Mi Mi Fa Sol | Sol Fa Mi Ré | Do Do Ré Mi | Mi Ré Ré",
			SheetMusicURL: "/static/partitions/ode-joie.pdf", VideoURL: "https://www.youtube.com/watch?v=example1", Order: 1},
		{CourseID: pianoDebutant.ID, Title: "Les Accords de Base", Description: "Apprendre les accords majeurs et mineurs",
			SongName:    "Let It Be - The Beatles",
			SongHistory: "'Let It Be' a été écrite par Paul McCartney en 1968, inspirée par un rêve de sa mère décédée.",
			ChordHelp:   "Accords utilisés: Do Majeur (C), Sol Majeur (G), La mineur (Am), Fa Majeur (F).\nProgression: C - G - Am - F",
			SheetMusicURL: "/static/partitions/let-it-be.pdf", VideoURL: "https://www.youtube.com/watch?v=example2", Order: 2},
		{CourseID: guitareDebutant.ID, Title: "Les Premiers Accords", Description: "Mi mineur, La mineur, Ré majeur",
			SongName:    "Knockin' on Heaven's Door - Bob Dylan",
			SongHistory: "Écrite par Bob Dylan en 1973 pour le film 'Pat Garrett et Billy le Kid'.",
			ChordHelp:   "Accords de base: G 320003, D xx0232, Am x02210, C x32010.\nGrattage: Bas Bas Haut Haut Bas Haut",
			SheetMusicURL: "/static/partitions/knockin.pdf", VideoURL: "https://www.youtube.com/watch?v=example3", Order: 1},
		{CourseID: guitareDebutant.ID, Title: "Le Rythme au Médiator", Description: "Techniques de grattage et de picking",
			SongName:    "Horse With No Name - America",
			SongHistory: "Sortie en 1971, sa simplicité avec seulement 2 accords en fait un excellent morceau pour débuter.",
			ChordHelp:   "Seulement 2 accords! Em: 022000, D6/9: xx0200.\nRythme: Bas Haut Bas Haut Bas Haut",
			SheetMusicURL: "/static/partitions/horse-no-name.pdf", VideoURL: "https://www.youtube.com/watch?v=example4", Order: 2},
	}
	for i := range lessons {
		if err := tx.Create(&lessons[i]).Error; err != nil {
			return err
		}
	}

	// Enrollments
	enrollments := []models.Enrollment{
		{StudentID: alice.ID, CourseID: pianoDebutant.ID, Progress: 45},
		{StudentID: lucas.ID, CourseID: guitareDebutant.ID, Progress: 60},
		{StudentID: emma.ID, CourseID: techniqueVocale.ID, Progress: 30},
		{StudentID: emma.ID, CourseID: pianoInter.ID, Progress: 20},
	}
	for i := range enrollments {
		if err := tx.Create(&enrollments[i]).Error; err != nil {
			return err
		}
	}

	// Marketplace
	items := []models.MarketplaceItem{
		{Title: "Guitare Acoustique Yamaha F310", Description: "Guitare acoustique en excellent état, parfaite pour débutants. Livrée avec housse de protection et médiators.",
			Price: 150.00, ImageURL: "/static/images/marketplace/guitare-yamaha.jpg", SellerID: admin.ID},
		{Title: "Clavier Numérique Casio CT-S300", Description: "Clavier 61 touches avec différents sons et rythmes. Idéal pour s'entraîner à la maison.",
			Price: 200.00, ImageURL: "/static/images/marketplace/clavier-casio.jpg", SellerID: admin.ID},
		{Title: "Métronome Mécanique Wittner", Description: "Métronome mécanique traditionnel en bois, excellent état.",
			Price: 45.00, ImageURL: "/static/images/marketplace/metronome.jpg", SellerID: admin.ID},
		{Title: "Pupitre en Métal Réglable", Description: "Pupitre robuste en métal noir, hauteur et angle réglables. Pliable.",
			Price: 25.00, ImageURL: "/static/images/marketplace/pupitre.jpg", SellerID: admin.ID},
		{Title: "Lot de Partitions Classiques", Description: "Collection de 20 partitions classiques pour piano (Bach, Mozart, Chopin, etc.).",
			Price: 35.00, ImageURL: "/static/images/marketplace/partitions.jpg", SellerID: admin.ID, IsSold: true},
		{Title: "Accordeur Chromatique Électronique", Description: "Accordeur numérique à pince pour guitare, basse, violon.",
			Price: 15.00, ImageURL: "/static/images/marketplace/accordeur.jpg", SellerID: admin.ID},
	}
	for i := range items {
		if err := tx.Create(&items[i]).Error; err != nil {
			return err
		}
	}

	// Planning: teacher and student sides of the same lesson are separate
	// rows so each keeps its own reminder text.
	nextAt := func(weekday time.Weekday, hour int) time.Time {
		now := time.Now()
		days := (int(weekday) - int(now.Weekday()) + 7) % 7
		return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location()).AddDate(0, 0, days)
	}

	schedule := []models.ScheduleItem{
		{UserID: profPiano.ID, Title: "Cours Piano - Alice Dubois", Description: "Cours particulier de piano débutant",
			StartTime: nextAt(time.Monday, 14), EndTime: nextAt(time.Monday, 15), CourseID: &pianoDebutant.ID,
			ReminderText: "Revoir: Ode à la Joie, exercices de gammes", IsTeacherView: true},
		{UserID: profPiano.ID, Title: "Cours Piano - Emma Rousseau", Description: "Cours particulier de piano intermédiaire",
			StartTime: nextAt(time.Wednesday, 16), EndTime: nextAt(time.Wednesday, 17), CourseID: &pianoInter.ID,
			ReminderText: "Travailler: Sonate au Clair de Lune (Beethoven), arpèges", IsTeacherView: true},
		{UserID: alice.ID, Title: "Cours de Piano", Description: "Cours avec Mme Leclerc",
			StartTime: nextAt(time.Monday, 14), EndTime: nextAt(time.Monday, 15), CourseID: &pianoDebutant.ID,
			ReminderText: "À préparer: Ode à la Joie jusqu'à la mesure 16, gammes de Do majeur"},
		{UserID: profGuitare.ID, Title: "Cours Guitare - Lucas Bernard", Description: "Cours particulier de guitare débutant",
			StartTime: nextAt(time.Tuesday, 15), EndTime: nextAt(time.Tuesday, 16), CourseID: &guitareDebutant.ID,
			ReminderText: "Revoir: Accords de base Em, Am, C, G. Changements fluides", IsTeacherView: true},
		{UserID: lucas.ID, Title: "Cours de Guitare", Description: "Cours avec M. Martin",
			StartTime: nextAt(time.Tuesday, 15), EndTime: nextAt(time.Tuesday, 16), CourseID: &guitareDebutant.ID,
			ReminderText: "Cette semaine: Pratiquer les transitions Em-Am-C-G (10 min/jour)"},
	}
	for i := range schedule {
		if err := tx.Create(&schedule[i]).Error; err != nil {
			return err
		}
	}

	return nil
}
