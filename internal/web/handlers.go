package web

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mathventure/internal/quiz"
	"mathventure/internal/session"
	"mathventure/internal/store"
)

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.render(w, "home.html", pageData{
		"Levels":       quiz.AllDifficulties(),
		"DefaultCount": session.DefaultPuzzleCount,
		"MinCount":     session.MinPuzzleCount,
		"MaxCount":     session.MaxPuzzleCount,
	})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	player := strings.TrimSpace(r.FormValue("player"))
	if player == "" {
		player = "Player"
	}

	level, err := quiz.ParseDifficulty(r.FormValue("level"))
	if err != nil {
		http.Error(w, "invalid difficulty level", http.StatusBadRequest)
		return
	}

	count := session.DefaultPuzzleCount
	if v := r.FormValue("count"); v != "" {
		count, err = strconv.Atoi(v)
		if err != nil {
			http.Error(w, "puzzle count must be a number", http.StatusBadRequest)
			return
		}
	}

	sess, err := session.New(session.Config{
		Player:      player,
		StartLevel:  level,
		PuzzleCount: count,
	}, s.gen, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if s.repo != nil {
		err := s.repo.AppendSessionEvent(r.Context(), store.SessionEventData{
			SessionID:     sess.ID(),
			Action:        "start",
			Player:        player,
			StartingLevel: int(level),
		})
		if err != nil {
			s.log.Warn("record session start", zap.Error(err))
		}
	}

	if _, err := sess.Next(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.mu.Lock()
	s.round = &activeRound{sess: sess, questionStart: time.Now()}
	s.mu.Unlock()

	http.Redirect(w, r, "/play", http.StatusSeeOther)
}

func (s *Server) handlePlay(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	round := s.round
	s.mu.Unlock()

	if round == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	puzzle := round.sess.Current()
	if puzzle == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := pageData{
		"Player":   round.sess.Config().Player,
		"Question": puzzle.Question,
		"Served":   round.sess.Served(),
		"Count":    round.sess.Config().PuzzleCount,
		"Level":    round.sess.Level(),
		"Streak":   round.sess.Tracker().CurrentStreak(),
	}
	if out := round.lastOutcome; out != nil {
		data["Outcome"] = out
		if out.Transition != nil && out.Transition.Decision != quiz.DecisionMaintain {
			data["Transition"] = out.Transition
		}
	}
	s.render(w, "play.html", data)
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	answer, err := strconv.Atoi(strings.TrimSpace(r.FormValue("answer")))
	if err != nil {
		http.Redirect(w, r, "/play", http.StatusSeeOther)
		return
	}

	s.mu.Lock()
	round := s.round
	if round == nil {
		s.mu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	puzzle := round.sess.Current()
	if puzzle == nil {
		s.mu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	p := *puzzle
	elapsed := time.Since(round.questionStart)

	outcome, err := round.sess.Submit(answer, elapsed, time.Now())
	if err != nil {
		s.mu.Unlock()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	round.lastOutcome = &outcome

	if s.repo != nil {
		s.recordAttempt(r.Context(), round.sess.ID(), p.Question, p.Answer, answer, outcome, elapsed, int(p.Difficulty))
	}

	if round.sess.Done() {
		s.finishLocked(r.Context(), round)
		s.mu.Unlock()
		http.Redirect(w, r, "/summary", http.StatusSeeOther)
		return
	}

	if _, err := round.sess.Next(); err != nil {
		s.mu.Unlock()
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	round.questionStart = time.Now()
	s.mu.Unlock()

	http.Redirect(w, r, "/play", http.StatusSeeOther)
}

func (s *Server) handleEndEarly(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	round := s.round
	if round == nil {
		s.mu.Unlock()
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	s.finishLocked(r.Context(), round)
	s.mu.Unlock()

	http.Redirect(w, r, "/summary", http.StatusSeeOther)
}

// finishLocked rolls up the round, records the end event, and clears the
// active round. Caller holds mu.
func (s *Server) finishLocked(ctx context.Context, round *activeRound) {
	now := time.Now()
	sum := round.sess.Summary(now)
	cfg := round.sess.Config()

	s.finished = &finishedRound{
		player:      cfg.Player,
		level:       round.sess.Level(),
		summary:     sum,
		transitions: round.sess.Transitions(),
	}
	s.round = nil

	if s.repo == nil {
		return
	}
	err := s.repo.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:      round.sess.ID(),
		Action:         "end",
		Player:         cfg.Player,
		StartingLevel:  int(cfg.StartLevel),
		FinalLevel:     int(round.sess.Level()),
		PuzzlesServed:  sum.TotalPuzzles,
		CorrectAnswers: sum.Correct,
		BestStreak:     sum.BestStreak,
		DurationSecs:   int(sum.Duration.Seconds()),
	})
	if err != nil {
		s.log.Warn("record session end", zap.Error(err))
	}
}

func (s *Server) recordAttempt(ctx context.Context, sessionID, question string, correct, given int, out session.Outcome, elapsed time.Duration, difficulty int) {
	err := s.repo.AppendAttemptEvent(ctx, store.AttemptEventData{
		SessionID:     sessionID,
		Question:      question,
		CorrectAnswer: correct,
		UserAnswer:    given,
		Correct:       out.Correct,
		TimeMs:        int(elapsed.Milliseconds()),
		Difficulty:    difficulty,
	})
	if err != nil {
		s.log.Warn("record attempt", zap.Error(err))
	}

	if tr := out.Transition; tr != nil {
		err := s.repo.AppendTransitionEvent(ctx, store.TransitionEventData{
			SessionID:        sessionID,
			FromLevel:        int(tr.From),
			ToLevel:          int(tr.To),
			Decision:         string(tr.Decision),
			PerformanceScore: tr.PerformanceScore,
			RecentAccuracy:   tr.RecentAccuracy,
			RecentAvgTime:    tr.RecentAvgTime.Seconds(),
			Reason:           tr.Reason,
		})
		if err != nil {
			s.log.Warn("record transition", zap.Error(err))
		}
	}
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	finished := s.finished
	s.mu.Unlock()

	if finished == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	sum := finished.summary
	changes := make([]quiz.Transition, 0, len(finished.transitions))
	for _, tr := range finished.transitions {
		if tr.Decision != quiz.DecisionMaintain {
			changes = append(changes, tr)
		}
	}

	s.render(w, "summary.html", pageData{
		"Player":         finished.player,
		"Level":          finished.level,
		"Summary":        sum,
		"Changes":        changes,
		"Recommendation": quiz.Recommendation(sum, finished.level),
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		s.render(w, "history.html", pageData{"Sessions": nil})
		return
	}

	sessions, err := s.repo.RecentSessions(r.Context(), 50)
	if err != nil {
		s.log.Error("load history", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	type row struct {
		store.SessionRecord
		Accuracy   float64
		StartLevel quiz.Difficulty
		EndLevel   quiz.Difficulty
	}
	rows := make([]row, 0, len(sessions))
	for _, sess := range sessions {
		var acc float64
		if sess.PuzzlesServed > 0 {
			acc = float64(sess.CorrectAnswers) / float64(sess.PuzzlesServed)
		}
		rows = append(rows, row{
			SessionRecord: sess,
			Accuracy:      acc,
			StartLevel:    quiz.Difficulty(sess.StartingLevel),
			EndLevel:      quiz.Difficulty(sess.FinalLevel),
		})
	}

	s.render(w, "history.html", pageData{"Sessions": rows})
}
