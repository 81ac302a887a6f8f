package cmd

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/strikelab/midipad/config"
	"github.com/strikelab/midipad/model"
	"github.com/strikelab/midipad/report"
	"github.com/strikelab/midipad/session"
)

var serveLogger *zap.Logger

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves metric reports over HTTP",
	Long:  `Serves metric reports over HTTP`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")
		return serve(addr)
	},
}

// AnalyzeRequest is the POST /analyze body. Unset fields keep defaults.
type AnalyzeRequest struct {
	Dir          string   `json:"dir"`
	Segments     bool     `json:"segments"`
	NumSegments  *int     `json:"num_segments"`
	MeanSegments *bool    `json:"mean_segments"`
	Metrics      []string `json:"metrics"`
	UEKeys       []int    `json:"ue_keys"`
	LFKey        *int     `json:"lf_key"`
	RFKey        *int     `json:"rf_key"`
	Totals       bool     `json:"totals"`
}

// AnalyzeResponse carries the projected table.
type AnalyzeResponse struct {
	RequestID string     `json:"request_id"`
	Columns   []string   `json:"columns"`
	Rows      [][]string `json:"rows"`
}

// ErrorResponse mirrors the error shape of the JSON API.
type ErrorResponse struct {
	Error string `json:"detail"`
}

func (r AnalyzeRequest) options() config.Options {
	opts := config.Default()
	if len(r.Metrics) > 0 {
		opts.Metrics = r.Metrics
	}
	if len(r.UEKeys) > 0 {
		opts.UEKeys = r.UEKeys
	}
	if r.LFKey != nil {
		opts.LFKey = *r.LFKey
	}
	if r.RFKey != nil {
		opts.RFKey = *r.RFKey
	}
	if r.NumSegments != nil {
		opts.NumSegments = *r.NumSegments
	}
	if r.MeanSegments != nil {
		opts.MeanSegments = *r.MeanSegments
	}
	opts.TotalsRow = r.Totals
	return opts
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
}

// HandleAnalyze runs one batch per request and returns the projected table.
func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	logger := serveLogger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("request_id", requestID))

	var input AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if input.Dir == "" {
		http.Error(w, "dir is required", http.StatusBadRequest)
		return
	}

	opts := input.options()
	agg := session.New(logger)

	var table model.Table
	var err error
	if input.Segments {
		table, err = agg.RunSegments(input.Dir, opts)
	} else {
		table, err = agg.Run(input.Dir, opts)
	}
	if err != nil {
		logger.Warn("analyze failed", zap.Error(err))
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	rows := report.Project(table, opts.Metrics)
	res := AnalyzeResponse{
		RequestID: requestID,
		Columns:   rows[0],
		Rows:      rows[1:],
	}
	logger.Info("analyze served", zap.Int("rows", len(res.Rows)))
	json.NewEncoder(w).Encode(res)
}

func serve(addr string) error {
	serveLogger = newLogger()
	defer serveLogger.Sync()

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")

	serveLogger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, cors.Default().Handler(router))
}
