package dao

import (
	"gorm.io/gorm"
)

func rolePtr(role string) *string {
	return &role
}

// badgeCatalog is the fixed achievement catalog. Names, icons, requirement
// text and point values mirror the platform's launch seed; the predicate key
// is what actually drives the award engine.
var badgeCatalog = []Badge{
	// Creator badges.
	{
		Name:           "First Upload",
		Description:    "Upload your first piece of content",
		Icon:           "star",
		Requirement:    "Upload 1 content piece",
		RequiredPoints: 0,
		Role:           rolePtr("creator"),
		PredicateKey:   "first_content",
	},
	{
		Name:           "Viral Content",
		Description:    "Create content that reaches 1000+ views",
		Icon:           "fire",
		Requirement:    "1K+ views on any content",
		RequiredPoints: 50,
		Role:           rolePtr("creator"),
		PredicateKey:   "viral_content",
	},
	{
		Name:           "Top Creator",
		Description:    "Upload 50 pieces of content",
		Icon:           "trophy",
		Requirement:    "50 uploads needed",
		RequiredPoints: 500,
		Role:           rolePtr("creator"),
		PredicateKey:   "content_volume",
	},
	{
		Name:           "Community Hero",
		Description:    "Receive 100 likes across all content",
		Icon:           "users",
		Requirement:    "100 likes needed",
		RequiredPoints: 100,
		Role:           rolePtr("creator"),
		PredicateKey:   "cumulative_likes",
	},
	// Ambassador badges.
	{
		Name:           "Mentor",
		Description:    "Guide and support 5 content creators",
		Icon:           "handshake",
		Requirement:    "5 creators guided",
		RequiredPoints: 50,
		Role:           rolePtr("ambassador"),
		PredicateKey:   "ambassador_mentorship",
	},
	{
		Name:           "Event Host",
		Description:    "Successfully organize 10 events",
		Icon:           "calendar-alt",
		Requirement:    "10 events hosted",
		RequiredPoints: 250,
		Role:           rolePtr("ambassador"),
		PredicateKey:   "event_count_tier_1",
	},
	{
		Name:           "Community Builder",
		Description:    "Reach 50+ attendees across all events",
		Icon:           "users",
		Requirement:    "50+ attendees reached",
		RequiredPoints: 200,
		Role:           rolePtr("ambassador"),
		PredicateKey:   "event_participation",
	},
	{
		Name:           "Expert",
		Description:    "Host 25 successful events",
		Icon:           "crown",
		Requirement:    "25 events needed",
		RequiredPoints: 625,
		Role:           rolePtr("ambassador"),
		PredicateKey:   "event_count_tier_2",
	},
	{
		Name:           "Global Impact",
		Description:    "Make worldwide impact with 100 events",
		Icon:           "globe",
		Requirement:    "100 events needed",
		RequiredPoints: 2500,
		Role:           rolePtr("ambassador"),
		PredicateKey:   "event_count_tier_3",
	},
}

var featuredReviews = []Review{
	{
		Name:     "Dr. Sarah Chen",
		Role:     "Digital Literacy Ambassador",
		Content:  "MIL-CAN transformed how I teach media literacy. The creator resources are incredible and my students are more engaged than ever.",
		Rating:   5,
		Featured: true,
	},
	{
		Name:     "Alex Rodriguez",
		Role:     "Content Creator",
		Content:  "The badge system keeps me motivated and the AI assistant helps me create better educational content. Love this community!",
		Rating:   5,
		Featured: true,
	},
	{
		Name:     "Maria Santos",
		Role:     "Campus Ambassador",
		Content:  "Running MIL events on campus has been amazing. The templates and resources make it so easy to engage students effectively.",
		Rating:   5,
		Featured: true,
	},
	{
		Name:     "David Kim",
		Role:     "Student Creator",
		Content:  "Started as a student, now I'm helping others identify misinformation. The point system and badges make learning fun!",
		Rating:   5,
		Featured: true,
	},
}

// SeedReferenceData inserts the badge catalog and the featured reviews when
// their tables are empty. Safe to run on every startup.
func SeedReferenceData(db *gorm.DB) error {
	var badgeCount int64
	if err := db.Model(&Badge{}).Count(&badgeCount).Error; err != nil {
		return err
	}
	if badgeCount == 0 {
		if err := db.Create(&badgeCatalog).Error; err != nil {
			return err
		}
	}

	var reviewCount int64
	if err := db.Model(&Review{}).Count(&reviewCount).Error; err != nil {
		return err
	}
	if reviewCount == 0 {
		if err := db.Create(&featuredReviews).Error; err != nil {
			return err
		}
	}

	return nil
}
