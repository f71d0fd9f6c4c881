package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"mlflow-registry/internal/dto"
)

func renderJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderModelsTable(w io.Writer, resp *dto.ListRegisteredModelsResponse) error {
	if len(resp.Items) == 0 {
		_, _ = fmt.Fprintln(w, "(no models)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Versions", "Owner", "Description", "Updated"})

	for _, m := range resp.Items {
		t.AppendRow(table.Row{m.Name, m.VersionCount, m.Owner, m.Description, m.UpdatedAt})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d of %d models)\n", len(resp.Items), resp.Total)
	return nil
}

func renderModel(w io.Writer, m *dto.RegisteredModelResponse) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"Name", m.Name})
	t.AppendRow(table.Row{"Versions", m.VersionCount})
	if m.Owner != "" {
		t.AppendRow(table.Row{"Owner", m.Owner})
	}
	if m.Description != "" {
		t.AppendRow(table.Row{"Description", m.Description})
	}
	if m.LatestVersion != nil {
		t.AppendRow(table.Row{"Latest version", fmt.Sprintf("v%d (%s)", m.LatestVersion.Version, m.LatestVersion.CurrentStage)})
	}
	t.AppendRow(table.Row{"Created", m.CreatedAt})
	t.AppendRow(table.Row{"Updated", m.UpdatedAt})
	t.Render()
	return nil
}

func renderVersionsTable(w io.Writer, resp *dto.ListModelVersionsResponse) error {
	if len(resp.Items) == 0 {
		_, _ = fmt.Fprintln(w, "(no versions)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Version", "Stage", "Status", "Source", "Updated"})

	for _, v := range resp.Items {
		t.AppendRow(table.Row{v.Version, v.CurrentStage, v.Status, v.Source, v.UpdatedAt})
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d of %d versions)\n", len(resp.Items), resp.Total)
	return nil
}

func renderVersion(w io.Writer, v *dto.ModelVersionResponse) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"Model", v.ModelName})
	t.AppendRow(table.Row{"Version", v.Version})
	t.AppendRow(table.Row{"Stage", v.CurrentStage})
	t.AppendRow(table.Row{"Status", v.Status})
	if v.StatusMessage != "" {
		t.AppendRow(table.Row{"Status message", v.StatusMessage})
	}
	if v.Source != "" {
		t.AppendRow(table.Row{"Source", v.Source})
	}
	if v.RunID != "" {
		t.AppendRow(table.Row{"Run ID", v.RunID})
	}
	if v.UserID != "" {
		t.AppendRow(table.Row{"Created by", v.UserID})
	}
	t.AppendRow(table.Row{"Created", v.CreatedAt})
	t.AppendRow(table.Row{"Updated", v.UpdatedAt})
	t.Render()
	return nil
}

func renderVersionView(w io.Writer, v *dto.ModelVersionViewResponse) error {
	_, _ = fmt.Fprintln(w, v.Title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(v.Title)))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendRow(table.Row{"Model", v.ModelName})
	t.AppendRow(table.Row{"Version", v.Version})
	t.AppendRow(table.Row{"Stage", v.Stage})
	t.AppendRow(table.Row{"Status", v.Status})
	if v.StatusMessage != "" {
		t.AppendRow(table.Row{"Status message", v.StatusMessage})
	}
	if v.Run.Text != "" {
		run := v.Run.Text
		if v.Run.Href != "" {
			run = fmt.Sprintf("%s (%s)", v.Run.Text, v.Run.Href)
		}
		t.AppendRow(table.Row{"Run", run})
	}
	if v.Source != "" {
		t.AppendRow(table.Row{"Source", v.Source})
	}
	if v.UserID != "" {
		t.AppendRow(table.Row{"Created by", v.UserID})
	}
	t.AppendRow(table.Row{"Created", v.CreatedAt})
	t.AppendRow(table.Row{"Updated", v.UpdatedAt})
	t.Render()

	if !v.CanDelete {
		_, _ = fmt.Fprintf(w, "Deletion blocked: %s\n", v.DeleteBlockedReason)
	}
	_, _ = fmt.Fprintf(w, "Stage transitions: %s\n", strings.Join(v.StageOptions, ", "))
	return nil
}
