package models

import "time"

type PolicyState string

func (s PolicyState) String() string {
	return string(s)
}

const (
	PolicyStateDraft       PolicyState = "draft"
	PolicyStateStaged      PolicyState = "staged"
	PolicyStateSubmitted   PolicyState = "submitted"
	PolicyStateInvalidated PolicyState = "invalidated"
	PolicyStateValidated   PolicyState = "validated"
	PolicyStateDiscussed   PolicyState = "discussed"
	PolicyStateReviewed    PolicyState = "reviewed"
	PolicyStateFinalised   PolicyState = "finalised"
	PolicyStateVoted       PolicyState = "voted"
	PolicyStateConcluded   PolicyState = "concluded"
	PolicyStatePublished   PolicyState = "published"
	PolicyStateRejected    PolicyState = "rejected"
	PolicyStateChallenged  PolicyState = "challenged"
	PolicyStateClosed      PolicyState = "closed"
	PolicyStateDeleted     PolicyState = "deleted"
	PolicyStateHidden      PolicyState = "hidden"
)

// ModerationStates are the states in which reviews are being collected.
var ModerationStates = []PolicyState{
	PolicyStateSubmitted,
	PolicyStateInvalidated,
	PolicyStateChallenged,
}

// AdminStates are only visible to the policy team and the initiators.
var AdminStates = []PolicyState{
	PolicyStateSubmitted,
	PolicyStateInvalidated,
	PolicyStateRejected,
	PolicyStateChallenged,
	PolicyStateHidden,
	PolicyStateDeleted,
}

// EditStates are the states in which initiators may still change content.
var EditStates = []PolicyState{
	PolicyStateDraft,
	PolicyStateStaged,
	PolicyStateInvalidated,
}

// InviteStates are the states in which co-initiators can be gathered.
var InviteStates = []PolicyState{
	PolicyStateStaged,
}

// StaleStates no longer accept likes or debate contributions.
var StaleStates = []PolicyState{
	PolicyStateRejected,
	PolicyStateClosed,
	PolicyStateDeleted,
	PolicyStateHidden,
}

func (s PolicyState) In(states []PolicyState) bool {
	for _, candidate := range states {
		if s == candidate {
			return true
		}
	}
	return false
}

type Policy struct {
	ID    int    `json:"id" pg:",pk"`
	Title string `json:"title" pg:",notnull"`
	Slug  string `json:"slug" pg:",notnull"`

	// Content fields. The process requires every one of them to be
	// filled before a policy may leave an editable state.
	Summary  string `json:"summary"`
	Problem  string `json:"problem"`
	Demand   string `json:"demand"`
	Costs    string `json:"costs"`
	Funding  string `json:"funding"`
	Approach string `json:"approach"`
	Argument string `json:"argument"`
	Context  string `json:"context"`
	Scope    string `json:"scope"`
	Topic    string `json:"topic"`

	State PolicyState `json:"state" pg:"type:PolicyState,notnull,default:'draft'"`

	VariantOfID int       `json:"variant_of_id" pg:",use_zero"`
	VariantOf   *Policy   `json:"variant_of" pg:"rel:has-one"`
	Variants    []*Policy `json:"variants" pg:"rel:has-many,join_fk:variant_of_id"`

	// set once voting closes; while voting is open the eligible voter
	// count equals the number of active users
	EligibleVoters int `json:"eligible_voters" pg:",use_zero"`

	CreatedAt time.Time `json:"created_at" pg:"default:now()"`
	ChangedAt time.Time `json:"changed_at" pg:"default:now()"`

	StagedAt           *time.Time `json:"staged_at"`
	ValidatedAt        *time.Time `json:"validated_at"`
	WentInDiscussionAt *time.Time `json:"went_in_discussion_at"`
	WentInVoteAt       *time.Time `json:"went_in_vote_at"`
	PublishedAt        *time.Time `json:"published_at"`
	RejectedAt         *time.Time `json:"rejected_at"`
	ChallengedAt       *time.Time `json:"challenged_at"`
	ReopenedAt         *time.Time `json:"reopened_at"`

	Supporters  []*Supporter  `json:"supporters" pg:"rel:has-many"`
	Moderations []*Moderation `json:"moderations" pg:"rel:has-many"`
	Votes       []*Vote       `json:"votes" pg:"rel:has-many"`
}

// ContentFields returns every field that must be non-empty before the
// policy can advance out of an editable state.
func (p *Policy) ContentFields() []string {
	return []string{
		p.Title, p.Summary, p.Problem, p.Demand, p.Costs,
		p.Funding, p.Approach, p.Argument, p.Context, p.Scope, p.Topic,
	}
}

// HasRequiredFields multiplies field lengths, so a single empty field
// zeroes the product and fails the check.
func (p *Policy) HasRequiredFields() bool {
	product := 1
	for _, field := range p.ContentFields() {
		product *= len(field)
	}
	return product > 0
}

func (p *Policy) Initiators() []*Supporter {
	var initiators []*Supporter
	for _, s := range p.Supporters {
		if s.Initiator {
			initiators = append(initiators, s)
		}
	}
	return initiators
}

func (p *Policy) ConfirmedInitiators() []*Supporter {
	var initiators []*Supporter
	for _, s := range p.Supporters {
		if s.Initiator && s.Ack {
			initiators = append(initiators, s)
		}
	}
	return initiators
}

func (p *Policy) SupporterByUser(userID int) *Supporter {
	for _, s := range p.Supporters {
		if s.UserID == userID {
			return s
		}
	}
	return nil
}

func (p *Policy) IsInitiator(userID int) bool {
	s := p.SupporterByUser(userID)
	return s != nil && s.Initiator
}

func (p *Policy) IsConfirmedInitiator(userID int) bool {
	s := p.SupporterByUser(userID)
	return s != nil && s.Initiator && s.Ack
}

func (p *Policy) IsFirstInitiator(userID int) bool {
	s := p.SupporterByUser(userID)
	return s != nil && s.First && s.Initiator
}

func (p *Policy) PublicSupporters() []*Supporter {
	var supporters []*Supporter
	for _, s := range p.Supporters {
		if s.Public && s.Ack && !s.First && !s.Initiator {
			supporters = append(supporters, s)
		}
	}
	return supporters
}

func (p *Policy) CurrentModerations() []*Moderation {
	var moderations []*Moderation
	for _, m := range p.Moderations {
		if !m.Stale {
			moderations = append(moderations, m)
		}
	}
	return moderations
}

func (p *Policy) StaleModerations() []*Moderation {
	var moderations []*Moderation
	for _, m := range p.Moderations {
		if m.Stale {
			moderations = append(moderations, m)
		}
	}
	return moderations
}

func (p *Policy) ModerationByUser(userID int) *Moderation {
	for _, m := range p.CurrentModerations() {
		if m.UserID == userID {
			return m
		}
	}
	return nil
}

func (p *Policy) VoteByUser(userID int) *Vote {
	for _, v := range p.Votes {
		if v.UserID == userID {
			return v
		}
	}
	return nil
}

// AllVariants collects the sibling policies this one competes with: its
// own variants, or its parent plus the parent's other variants.
func (p *Policy) AllVariants() []*Policy {
	if len(p.Variants) > 0 {
		return p.Variants
	}

	if p.VariantOf != nil {
		variants := []*Policy{p.VariantOf}
		for _, sibling := range p.VariantOf.Variants {
			if sibling.ID == p.ID {
				continue
			}
			variants = append(variants, sibling)
		}
		return variants
	}

	return nil
}

func (p *Policy) String() string {
	return p.Title
}
