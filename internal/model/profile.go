package model

import "fmt"

type Mood string

const (
	MoodGreat    Mood = "Great"
	MoodOkay     Mood = "Okay"
	MoodStressed Mood = "Stressed"
	MoodTired    Mood = "Tired"
	MoodAnxious  Mood = "Anxious"
)

func ParseMood(s string) (Mood, error) {
	switch m := Mood(s); m {
	case MoodGreat, MoodOkay, MoodStressed, MoodTired, MoodAnxious:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mood %q", s)
	}
}

type Persona string

const (
	PersonaToxic   Persona = "Toxic Motivation"
	PersonaSoft    Persona = "Softer / Empathetic"
	PersonaNeutral Persona = "Neutral / Stoic"
)

func ParsePersona(s string) (Persona, error) {
	switch p := Persona(s); p {
	case PersonaToxic, PersonaSoft, PersonaNeutral:
		return p, nil
	default:
		return "", fmt.Errorf("unknown persona %q", s)
	}
}

// App names recognised in UserProfile.ConnectedApps.
const (
	AppTUM = "TUM Online"
	AppFlo = "Flo"
)

type UserProfile struct {
	Name               string
	Age                string
	HasCycle           bool
	RelationshipStatus string
	KidsCount          int
	CareerRoles        []string
	AvatarSeed         string
	ConnectedApps      []string
	GoogleConnected    bool
}

// ConnectionFlags determine which feed sources are visible at all. Health
// and user-created events are always shown regardless of flags.
type ConnectionFlags struct {
	Google   bool
	TUM      bool
	HasCycle bool
}

// Flags derives the visibility flags from the profile. Connecting the Flo
// app implies cycle tracking even if the explicit toggle is off.
func (p *UserProfile) Flags() ConnectionFlags {
	return ConnectionFlags{
		Google:   p.GoogleConnected,
		TUM:      p.HasApp(AppTUM),
		HasCycle: p.HasCycle || p.HasApp(AppFlo),
	}
}

func (p *UserProfile) HasApp(name string) bool {
	for _, app := range p.ConnectedApps {
		if app == name {
			return true
		}
	}
	return false
}

type WellnessMetrics struct {
	SleepHours  float64
	StressLevel int
	Mood        Mood
	Note        string
}

type ChatMessage struct {
	Role string
	Text string
}
