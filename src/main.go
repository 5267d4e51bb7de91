package main

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"

	"github.com/williamdwatson/bananagrams-solver-web/internal/board"
	"github.com/williamdwatson/bananagrams-solver-web/internal/solver"
	"github.com/williamdwatson/bananagrams-solver-web/internal/telemetry"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/bag"
	"github.com/williamdwatson/bananagrams-solver-web/pkg/primitives"
)

var logger = telemetry.NewLogger()

// PlacementDTO is the wire representation of a solver.Placement.
type PlacementDTO struct {
	Word      string `json:"word"`
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	Direction string `json:"direction"`
}

func placementToDTO(p solver.Placement) PlacementDTO {
	return PlacementDTO{
		Word:      primitives.ConvertArrayToWord(p.Word),
		Row:       p.Row,
		Col:       p.Col,
		Direction: p.Dir.String(),
	}
}

func placementFromDTO(p PlacementDTO) solver.Placement {
	dir := board.Horizontal
	if p.Direction == board.Vertical.String() {
		dir = board.Vertical
	}
	return solver.Placement{
		Word: primitives.ConvertWordToArray(p.Word),
		Row:  p.Row,
		Col:  p.Col,
		Dir:  dir,
	}
}

// PlayFromScratchRequest is the JSON body accepted by /play-from-scratch, per
// spec.md section 6.
type PlayFromScratchRequest struct {
	Letters              [primitives.NumLetters]int `json:"letters"`
	UseLongDictionary    bool                       `json:"useLongDictionary"`
	FilterLettersOnBoard int                        `json:"filterLettersOnBoard"`
	MaximumWordsToCheck  int                        `json:"maximumWordsToCheck"`
}

// PlayFromExistingRequest is the JSON body accepted by /play-from-existing.
type PlayFromExistingRequest struct {
	Letters              [primitives.NumLetters]int `json:"letters"`
	PriorLetters         [primitives.NumLetters]int `json:"priorLetters"`
	UseLongDictionary    bool                       `json:"useLongDictionary"`
	FilterLettersOnBoard int                        `json:"filterLettersOnBoard"`
	MaximumWordsToCheck  int                        `json:"maximumWordsToCheck"`
	PriorBoard           []byte                     `json:"priorBoard"`
	PriorMinCol          int                        `json:"priorMinCol"`
	PriorMaxCol          int                        `json:"priorMaxCol"`
	PriorMinRow          int                        `json:"priorMinRow"`
	PriorMaxRow          int                        `json:"priorMaxRow"`
	PriorPlaySequence    []PlacementDTO             `json:"priorPlaySequence"`
}

// SolveResponse is the JSON response shape shared by both endpoints.
type SolveResponse struct {
	Success     bool                       `json:"success"`
	Board       []byte                     `json:"board,omitempty"`
	BoardString [][]string                 `json:"boardString,omitempty"`
	MinRow      int                        `json:"minRow,omitempty"`
	MaxRow      int                        `json:"maxRow,omitempty"`
	MinCol      int                        `json:"minCol,omitempty"`
	MaxCol      int                        `json:"maxCol,omitempty"`
	Letters     [primitives.NumLetters]int `json:"letters,omitempty"`
	PlaySeq     []PlacementDTO             `json:"playSequence,omitempty"`
	Error       string                     `json:"error,omitempty"`
}

func resultToResponse(res solver.Result) SolveResponse {
	var letters [primitives.NumLetters]int
	for i, c := range res.Hand {
		letters[i] = int(c)
	}
	seq := make([]PlacementDTO, len(res.PlaySeq))
	for i, p := range res.PlaySeq {
		seq[i] = placementToDTO(p)
	}
	return SolveResponse{
		Success:     true,
		Board:       res.Board,
		BoardString: res.BoardString,
		MinRow:      res.Box.MinRow,
		MaxRow:      res.Box.MaxRow,
		MinCol:      res.Box.MinCol,
		MaxCol:      res.Box.MaxCol,
		Letters:     letters,
		PlaySeq:     seq,
	}
}

func handFromCounts(counts [primitives.NumLetters]int) (primitives.Hand, error) {
	return primitives.NewHandFromCounts(counts[:])
}

// loadDictionary queries BigQuery for the requested dictionary variant, mirroring
// the word-loading query shape used by the crossword-grid service this code was
// adapted from.
func loadDictionary(ctx context.Context, useLong bool) (*primitives.Dictionary, error) {
	client, err := bigquery.NewClient(ctx, "bananagrams-solver")
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	query := fmt.Sprintf(
		"SELECT word FROM `bananagrams-solver.Dictionary.words` WHERE is_long = %t OR is_long = false",
		useLong,
	)
	q := client.Query(query)
	q.Location = "US"

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []primitives.Word
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}
		raw, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		word, err := primitives.ValidateDictionaryWord(raw)
		if err != nil {
			continue
		}
		words = append(words, primitives.ConvertWordToArray(word))
	}
	return primitives.NewDictionary(words), nil
}

// NewHandRequest is the JSON body accepted by /new-hand.
type NewHandRequest struct {
	Count  int  `json:"count"`
	Double bool `json:"double"`
}

// NewHandResponse carries a freshly-drawn hand back to the caller.
type NewHandResponse struct {
	Success bool                       `json:"success"`
	Letters [primitives.NumLetters]int `json:"letters,omitempty"`
	Error   string                     `json:"error,omitempty"`
}

// newHandHandler draws a random hand from a standard or double tile bag, per
// spec.md section 6's tile-bag external collaborator, implemented in pkg/bag.
func newHandHandler(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		json.NewEncoder(w).Encode(NewHandResponse{Error: fmt.Sprintf("method %s not allowed", r.Method)})
		return
	}

	var req NewHandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(NewHandResponse{Error: fmt.Sprintf("invalid JSON: %v", err)})
		return
	}

	counts := bag.StandardCounts
	if req.Double {
		counts = bag.DoubleCounts
	}
	rnd := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), uint64(time.Now().Nanosecond())))
	b, err := bag.New(counts, rnd)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(NewHandResponse{Error: err.Error()})
		return
	}

	hand, err := b.DrawHand(req.Count)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(NewHandResponse{Error: err.Error()})
		return
	}

	var letters [primitives.NumLetters]int
	for i, c := range hand {
		letters[i] = int(c)
	}
	json.NewEncoder(w).Encode(NewHandResponse{Success: true, Letters: letters})
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(SolveResponse{Success: false, Error: err.Error()})
}

func playFromScratchHandler(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	ctx, requestID := telemetry.WithRequestID(r.Context())
	log := telemetry.ForRequest(ctx, logger)

	var req PlayFromScratchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}

	hand, err := handFromCounts(req.Letters)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	dict, err := loadDictionary(ctx, req.UseLongDictionary)
	if err != nil {
		log.Error("failed to load dictionary", zap.Error(err), zap.String("request_id", requestID))
		writeError(w, http.StatusInternalServerError, fmt.Errorf("loading dictionary: %w", err))
		return
	}

	result, err := solver.PlayFromScratch(solver.Request{
		Hand:                 hand,
		Dictionary:           dict,
		FilterLettersOnBoard: req.FilterLettersOnBoard,
		MaxWordsToCheck:      req.MaximumWordsToCheck,
	})
	if err != nil {
		log.Info("play-from-scratch found no solution", zap.Error(err))
		writeError(w, http.StatusOK, err)
		return
	}

	if err := json.NewEncoder(w).Encode(resultToResponse(result)); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}

func playFromExistingHandler(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method))
		return
	}

	ctx, requestID := telemetry.WithRequestID(r.Context())
	log := telemetry.ForRequest(ctx, logger)

	var req PlayFromExistingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn("invalid request body", zap.Error(err))
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid JSON: %w", err))
		return
	}

	hand, err := handFromCounts(req.Letters)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	priorHand, err := handFromCounts(req.PriorLetters)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if len(req.PriorPlaySequence) == 0 {
		writeError(w, http.StatusBadRequest, fmt.Errorf("priorPlaySequence must not be empty"))
		return
	}
	if len(req.PriorBoard) != board.Size*board.Size {
		writeError(w, http.StatusBadRequest, fmt.Errorf("priorBoard must contain exactly %d cells", board.Size*board.Size))
		return
	}

	dict, err := loadDictionary(ctx, req.UseLongDictionary)
	if err != nil {
		log.Error("failed to load dictionary", zap.Error(err), zap.String("request_id", requestID))
		writeError(w, http.StatusInternalServerError, fmt.Errorf("loading dictionary: %w", err))
		return
	}

	priorSeq := make(solver.PlaySequence, len(req.PriorPlaySequence))
	for i, p := range req.PriorPlaySequence {
		priorSeq[i] = placementFromDTO(p)
	}
	priorBoard := board.New()
	for i, v := range req.PriorBoard {
		priorBoard.SetVal(i/board.Size, i%board.Size, v)
	}
	prior := &solver.PriorState{
		Board:   priorBoard,
		Box:     boardBoxFrom(req),
		Hand:    priorHand,
		PlaySeq: priorSeq,
	}

	solveReq := solver.Request{
		Hand:                 hand,
		Dictionary:           dict,
		FilterLettersOnBoard: req.FilterLettersOnBoard,
		MaxWordsToCheck:      req.MaximumWordsToCheck,
	}

	result, err := solver.Solve(solveReq, prior)
	if err != nil {
		log.Info("play-from-existing found no solution", zap.Error(err))
		writeError(w, http.StatusOK, err)
		return
	}

	if err := json.NewEncoder(w).Encode(resultToResponse(result)); err != nil {
		log.Error("failed to encode response", zap.Error(err))
	}
}

func boardBoxFrom(req PlayFromExistingRequest) board.BoundingBox {
	return board.BoundingBox{
		MinRow:  req.PriorMinRow,
		MaxRow:  req.PriorMaxRow,
		MinCol:  req.PriorMinCol,
		MaxCol:  req.PriorMaxCol,
		Defined: true,
	}
}

func main() {
	defer logger.Sync()

	funcframework.RegisterHTTPFunction("/play-from-scratch", playFromScratchHandler)
	funcframework.RegisterHTTPFunction("/play-from-existing", playFromExistingHandler)
	funcframework.RegisterHTTPFunction("/new-hand", newHandHandler)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		logger.Fatal("funcframework.StartHostPort", zap.Error(err))
	}
}
