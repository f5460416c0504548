// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/olegiv/groeiboek/internal/apperr"
	"github.com/olegiv/groeiboek/internal/model"
	"github.com/olegiv/groeiboek/internal/store"
)

// OKRService manages the shared template tree: life domains, goals,
// objectives, key results and initiatives. Template deletion cascades into
// every user's instances, see deleteObjectiveTree.
type OKRService struct {
	db      *sql.DB
	queries *store.Queries
}

// NewOKRService creates an OKRService.
func NewOKRService(db *sql.DB) *OKRService {
	return &OKRService{db: db, queries: store.New(db)}
}

// nextNumber produces a human-readable code like "KR-123". The counter is a
// single atomic statement, so concurrent creations never share a number.
func nextNumber(ctx context.Context, q *store.Queries, prefix string) (string, error) {
	n, err := q.NextEntityNumber(ctx, prefix)
	if err != nil {
		return "", apperr.Internalf(err, "generating %s number", prefix)
	}
	return fmt.Sprintf("%s-%d", prefix, n), nil
}

// creatorID converts an optional user id to its stored form. Zero means a
// system template.
func creatorID(userID int64) sql.NullInt64 {
	if userID == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: userID, Valid: true}
}

// CreateLifeDomain creates a life domain, the root of the template tree.
func (s *OKRService) CreateLifeDomain(ctx context.Context, title, description model.Bilingual) (store.LifeDomain, error) {
	title, err := normalizeTitle(title)
	if err != nil {
		return store.LifeDomain{}, err
	}
	description = normalizeDescription(description)

	now := time.Now()
	domain, err := s.queries.CreateLifeDomain(ctx, store.CreateLifeDomainParams{
		TitleNl:       title.NL,
		TitleEn:       title.EN,
		DescriptionNl: description.NL,
		DescriptionEn: description.EN,
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	if err != nil {
		return store.LifeDomain{}, apperr.Internalf(err, "creating life domain")
	}
	return domain, nil
}

// GetLifeDomain fetches a life domain by id.
func (s *OKRService) GetLifeDomain(ctx context.Context, id int64) (store.LifeDomain, error) {
	domain, err := s.queries.GetLifeDomainByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.LifeDomain{}, apperr.NotFoundf("life domain %d not found", id)
	}
	if err != nil {
		return store.LifeDomain{}, apperr.Internalf(err, "loading life domain")
	}
	return domain, nil
}

// ListLifeDomains returns all life domains.
func (s *OKRService) ListLifeDomains(ctx context.Context) ([]store.LifeDomain, error) {
	domains, err := s.queries.ListLifeDomains(ctx)
	if err != nil {
		return nil, apperr.Internalf(err, "listing life domains")
	}
	return domains, nil
}

// CreateGoal creates a goal template under a life domain. userID zero means
// a system template.
func (s *OKRService) CreateGoal(ctx context.Context, lifeDomainID int64, title, description model.Bilingual, userID int64) (store.Goal, error) {
	if _, err := s.GetLifeDomain(ctx, lifeDomainID); err != nil {
		return store.Goal{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Goal{}, err
	}
	description = normalizeDescription(description)

	var goal store.Goal
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		number, err := nextNumber(ctx, q, model.NumberPrefixGoal)
		if err != nil {
			return err
		}
		now := time.Now()
		goal, err = q.CreateGoal(ctx, store.CreateGoalParams{
			LifeDomainID:    lifeDomainID,
			GoalNumber:      number,
			TitleNl:         title.NL,
			TitleEn:         title.EN,
			DescriptionNl:   description.NL,
			DescriptionEn:   description.EN,
			CreatedByUserID: creatorID(userID),
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating goal")
		}
		return nil
	})
	return goal, err
}

// GetGoal fetches a goal template by id.
func (s *OKRService) GetGoal(ctx context.Context, id int64) (store.Goal, error) {
	goal, err := s.queries.GetGoalByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Goal{}, apperr.NotFoundf("goal %d not found", id)
	}
	if err != nil {
		return store.Goal{}, apperr.Internalf(err, "loading goal")
	}
	return goal, nil
}

// ListGoals returns a life domain's goal templates.
func (s *OKRService) ListGoals(ctx context.Context, lifeDomainID int64) ([]store.Goal, error) {
	goals, err := s.queries.ListGoalsByLifeDomain(ctx, lifeDomainID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing goals")
	}
	return goals, nil
}

// CreateObjective creates an objective template under a goal.
func (s *OKRService) CreateObjective(ctx context.Context, goalID int64, title, description model.Bilingual, userID int64) (store.Objective, error) {
	if _, err := s.GetGoal(ctx, goalID); err != nil {
		return store.Objective{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Objective{}, err
	}
	description = normalizeDescription(description)

	var objective store.Objective
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		number, err := nextNumber(ctx, q, model.NumberPrefixObjective)
		if err != nil {
			return err
		}
		now := time.Now()
		objective, err = q.CreateObjective(ctx, store.CreateObjectiveParams{
			GoalID:          goalID,
			ObjectiveNumber: number,
			TitleNl:         title.NL,
			TitleEn:         title.EN,
			DescriptionNl:   description.NL,
			DescriptionEn:   description.EN,
			CreatedByUserID: creatorID(userID),
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating objective")
		}
		return nil
	})
	return objective, err
}

// GetObjective fetches an objective template by id.
func (s *OKRService) GetObjective(ctx context.Context, id int64) (store.Objective, error) {
	objective, err := s.queries.GetObjectiveByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Objective{}, apperr.NotFoundf("objective %d not found", id)
	}
	if err != nil {
		return store.Objective{}, apperr.Internalf(err, "loading objective")
	}
	return objective, nil
}

// ListObjectives returns a goal's objective templates.
func (s *OKRService) ListObjectives(ctx context.Context, goalID int64) ([]store.Objective, error) {
	objectives, err := s.queries.ListObjectivesByGoal(ctx, goalID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing objectives")
	}
	return objectives, nil
}

// CreateKeyResult creates a key result template. The target value must be
// positive.
func (s *OKRService) CreateKeyResult(ctx context.Context, objectiveID int64, title model.Bilingual, targetValue float64, unit string, userID int64) (store.KeyResult, error) {
	if _, err := s.GetObjective(ctx, objectiveID); err != nil {
		return store.KeyResult{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.KeyResult{}, err
	}
	if targetValue <= 0 {
		return store.KeyResult{}, apperr.Invalidf("target value must be positive")
	}

	var kr store.KeyResult
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		number, err := nextNumber(ctx, q, model.NumberPrefixKeyResult)
		if err != nil {
			return err
		}
		now := time.Now()
		kr, err = q.CreateKeyResult(ctx, store.CreateKeyResultParams{
			ObjectiveID:     objectiveID,
			KeyResultNumber: number,
			TitleNl:         title.NL,
			TitleEn:         title.EN,
			TargetValue:     targetValue,
			Unit:            unit,
			CreatedByUserID: creatorID(userID),
			CreatedAt:       now,
			UpdatedAt:       now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating key result")
		}
		return nil
	})
	return kr, err
}

// GetKeyResult fetches a key result template by id.
func (s *OKRService) GetKeyResult(ctx context.Context, id int64) (store.KeyResult, error) {
	kr, err := s.queries.GetKeyResultByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.KeyResult{}, apperr.NotFoundf("key result %d not found", id)
	}
	if err != nil {
		return store.KeyResult{}, apperr.Internalf(err, "loading key result")
	}
	return kr, nil
}

// ListKeyResults returns an objective's key result templates.
func (s *OKRService) ListKeyResults(ctx context.Context, objectiveID int64) ([]store.KeyResult, error) {
	krs, err := s.queries.ListKeyResultsByObjective(ctx, objectiveID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing key results")
	}
	return krs, nil
}

// CreateInitiative creates an initiative template under a key result.
func (s *OKRService) CreateInitiative(ctx context.Context, keyResultID int64, title, description model.Bilingual, userID int64) (store.Initiative, error) {
	if _, err := s.GetKeyResult(ctx, keyResultID); err != nil {
		return store.Initiative{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.Initiative{}, err
	}
	description = normalizeDescription(description)

	var ini store.Initiative
	err = withTx(ctx, s.db, func(q *store.Queries) error {
		number, err := nextNumber(ctx, q, model.NumberPrefixInitiative)
		if err != nil {
			return err
		}
		now := time.Now()
		ini, err = q.CreateInitiative(ctx, store.CreateInitiativeParams{
			KeyResultID:      keyResultID,
			InitiativeNumber: number,
			TitleNl:          title.NL,
			TitleEn:          title.EN,
			DescriptionNl:    description.NL,
			DescriptionEn:    description.EN,
			CreatedByUserID:  creatorID(userID),
			CreatedAt:        now,
			UpdatedAt:        now,
		})
		if err != nil {
			return apperr.Internalf(err, "creating initiative")
		}
		return nil
	})
	return ini, err
}

// GetInitiative fetches an initiative template by id.
func (s *OKRService) GetInitiative(ctx context.Context, id int64) (store.Initiative, error) {
	ini, err := s.queries.GetInitiativeByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return store.Initiative{}, apperr.NotFoundf("initiative %d not found", id)
	}
	if err != nil {
		return store.Initiative{}, apperr.Internalf(err, "loading initiative")
	}
	return ini, nil
}

// ListInitiatives returns a key result's initiative templates.
func (s *OKRService) ListInitiatives(ctx context.Context, keyResultID int64) ([]store.Initiative, error) {
	inis, err := s.queries.ListInitiativesByKeyResult(ctx, keyResultID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing initiatives")
	}
	return inis, nil
}

// CreateInitiativeSuggestion records an inspiration entry under a key result.
func (s *OKRService) CreateInitiativeSuggestion(ctx context.Context, keyResultID int64, title model.Bilingual) (store.InitiativeSuggestion, error) {
	if _, err := s.GetKeyResult(ctx, keyResultID); err != nil {
		return store.InitiativeSuggestion{}, err
	}
	title, err := normalizeTitle(title)
	if err != nil {
		return store.InitiativeSuggestion{}, err
	}
	suggestion, err := s.queries.CreateInitiativeSuggestion(ctx, store.CreateInitiativeSuggestionParams{
		KeyResultID: keyResultID,
		TitleNl:     title.NL,
		TitleEn:     title.EN,
		CreatedAt:   time.Now(),
	})
	if err != nil {
		return store.InitiativeSuggestion{}, apperr.Internalf(err, "creating suggestion")
	}
	return suggestion, nil
}

// ListInitiativeSuggestions returns the read-only suggestion list for a key
// result. Suggestions never join the instance graph.
func (s *OKRService) ListInitiativeSuggestions(ctx context.Context, keyResultID int64) ([]store.InitiativeSuggestion, error) {
	suggestions, err := s.queries.ListInitiativeSuggestions(ctx, keyResultID)
	if err != nil {
		return nil, apperr.Internalf(err, "listing suggestions")
	}
	return suggestions, nil
}

// DeleteGoal removes a goal template with all objectives under it and every
// user's instances of any of them.
func (s *OKRService) DeleteGoal(ctx context.Context, id int64) error {
	if _, err := s.GetGoal(ctx, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		objectives, err := q.ListObjectivesByGoal(ctx, id)
		if err != nil {
			return apperr.Internalf(err, "listing objectives")
		}
		for _, o := range objectives {
			if err := deleteObjectiveTree(ctx, q, o.ID); err != nil {
				return err
			}
		}

		// Goal-level enrollments and their board entries.
		goalInstances, err := q.ListUserGoalInstancesByGoal(ctx, id)
		if err != nil {
			return apperr.Internalf(err, "listing goal instances")
		}
		for _, gi := range goalInstances {
			if err := detachKanban(ctx, q, gi.UserID, model.ItemGoal, gi.ID); err != nil {
				return err
			}
			if err := q.DeleteUserGoalInstance(ctx, gi.ID); err != nil {
				return apperr.Internalf(err, "deleting goal instance")
			}
		}

		if err := q.DeleteGoal(ctx, id); err != nil {
			return apperr.Internalf(err, "deleting goal")
		}
		return nil
	})
}

// DeleteObjective removes an objective template, its key results and
// initiatives, and every user's instances, progress rows and kanban entries
// touching any of them. Template rows go last.
func (s *OKRService) DeleteObjective(ctx context.Context, id int64) error {
	if _, err := s.GetObjective(ctx, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return deleteObjectiveTree(ctx, q, id)
	})
}

// DeleteKeyResult removes a key result template, its initiatives and all
// instances of either.
func (s *OKRService) DeleteKeyResult(ctx context.Context, id int64) error {
	if _, err := s.GetKeyResult(ctx, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return deleteKeyResultTree(ctx, q, id)
	})
}

// DeleteInitiative removes an initiative template and all its instances.
func (s *OKRService) DeleteInitiative(ctx context.Context, id int64) error {
	if _, err := s.GetInitiative(ctx, id); err != nil {
		return err
	}
	return withTx(ctx, s.db, func(q *store.Queries) error {
		return deleteInitiativeTree(ctx, q, id)
	})
}

// deleteObjectiveTree deletes an objective template bottom-up: initiative
// instances, key result instances, progress rows, objective instances, then
// the template rows themselves.
func deleteObjectiveTree(ctx context.Context, q *store.Queries, objectiveID int64) error {
	keyResults, err := q.ListKeyResultsByObjective(ctx, objectiveID)
	if err != nil {
		return apperr.Internalf(err, "listing key results")
	}
	for _, kr := range keyResults {
		if err := deleteKeyResultTree(ctx, q, kr.ID); err != nil {
			return err
		}
	}

	instances, err := q.ListUserObjectiveInstancesByObjective(ctx, objectiveID)
	if err != nil {
		return apperr.Internalf(err, "listing objective instances")
	}
	for _, oi := range instances {
		if err := q.DeleteKeyResultProgressByObjectiveInstance(ctx, oi.ID); err != nil {
			return apperr.Internalf(err, "deleting progress rows")
		}
		if err := detachKanban(ctx, q, oi.UserID, model.ItemObjective, oi.ID); err != nil {
			return err
		}
		if err := q.DeleteUserObjectiveInstance(ctx, oi.ID); err != nil {
			return apperr.Internalf(err, "deleting objective instance")
		}
	}

	if err := q.DeleteObjective(ctx, objectiveID); err != nil {
		return apperr.Internalf(err, "deleting objective")
	}
	return nil
}

func deleteKeyResultTree(ctx context.Context, q *store.Queries, keyResultID int64) error {
	initiatives, err := q.ListInitiativesByKeyResult(ctx, keyResultID)
	if err != nil {
		return apperr.Internalf(err, "listing initiatives")
	}
	for _, ini := range initiatives {
		if err := deleteInitiativeTree(ctx, q, ini.ID); err != nil {
			return err
		}
	}

	instances, err := q.ListUserKeyResultInstancesByKeyResult(ctx, keyResultID)
	if err != nil {
		return apperr.Internalf(err, "listing key result instances")
	}
	for _, ki := range instances {
		userID, err := instanceOwner(ctx, q, ki.UserObjectiveInstanceID)
		if err != nil {
			return err
		}
		if err := q.DeleteKeyResultProgressByPair(ctx, store.DeleteKeyResultProgressByPairParams{
			KeyResultID:             keyResultID,
			UserObjectiveInstanceID: ki.UserObjectiveInstanceID,
		}); err != nil {
			return apperr.Internalf(err, "deleting progress row")
		}
		if err := detachKanban(ctx, q, userID, model.ItemKeyResult, ki.ID); err != nil {
			return err
		}
		if err := q.DeleteUserKeyResultInstance(ctx, ki.ID); err != nil {
			return apperr.Internalf(err, "deleting key result instance")
		}
	}

	if err := q.DeleteKeyResult(ctx, keyResultID); err != nil {
		return apperr.Internalf(err, "deleting key result")
	}
	return nil
}

func deleteInitiativeTree(ctx context.Context, q *store.Queries, initiativeID int64) error {
	instances, err := q.ListUserInitiativeInstancesByInitiative(ctx, initiativeID)
	if err != nil {
		return apperr.Internalf(err, "listing initiative instances")
	}
	for _, ii := range instances {
		kri, err := q.GetUserKeyResultInstanceByID(ctx, ii.UserKeyResultInstanceID)
		if err != nil {
			return apperr.Internalf(err, "loading key result instance")
		}
		userID, err := instanceOwner(ctx, q, kri.UserObjectiveInstanceID)
		if err != nil {
			return err
		}
		if err := detachKanban(ctx, q, userID, model.ItemInitiative, ii.ID); err != nil {
			return err
		}
		if err := q.DeleteUserInitiativeInstance(ctx, ii.ID); err != nil {
			return apperr.Internalf(err, "deleting initiative instance")
		}
	}

	if err := q.DeleteInitiative(ctx, initiativeID); err != nil {
		return apperr.Internalf(err, "deleting initiative")
	}
	return nil
}

// instanceOwner walks up from an objective instance to its owning user. The
// board has no reverse index by instance alone, so deletions resolve the
// user first.
func instanceOwner(ctx context.Context, q *store.Queries, objectiveInstanceID int64) (int64, error) {
	oi, err := q.GetUserObjectiveInstanceByID(ctx, objectiveInstanceID)
	if err != nil {
		return 0, apperr.Internalf(err, "loading objective instance")
	}
	return oi.UserID, nil
}

// detachKanban removes a board entry if one references the instance.
func detachKanban(ctx context.Context, q *store.Queries, userID int64, itemType string, itemID int64) error {
	if err := q.DeleteKanbanItemByRef(ctx, store.KanbanItemRefParams{
		UserID:   userID,
		ItemType: itemType,
		ItemID:   itemID,
	}); err != nil {
		return apperr.Internalf(err, "detaching kanban item")
	}
	return nil
}
