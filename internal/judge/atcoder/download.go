package atcoder

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"

	"online-judge-toolchain/internal/components/failure"
	"online-judge-toolchain/lib/htmlutil"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Download fetches the task list of the contest, then every task page one
// after the other and writes their samples to
// <outputDir>/<contestId>/<task prefix>/tests. The first task that fails
// aborts the download.
func (a AtCoder) Download(ctx context.Context, client *resty.Client, contestId, outputDir string) error {
	ctx, span := tracer.Start(ctx, "Download")
	defer span.End()
	span.SetAttributes(attribute.String("contest_id", contestId))

	if outputDir == "" {
		outputDir = "."
	}

	tasks, err := a.fetchTasks(ctx, client, contestId)
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch tasks")
		return err
	}
	a.tel.ReportCount(report_atcoder_fetch_tasks, int64(len(tasks)))
	if len(tasks) == 0 {
		a.tel.ReportWarning(report_atcoder_fetch_tasks, "no tasks found", contestId)
	}

	contestDir, err := a.createContestDirectory(outputDir, contestId)
	if err != nil {
		span.SetStatus(codes.Error, "failed to create contest directory")
		return err
	}

	for _, task := range tasks {
		err := a.downloadTaskSamples(ctx, client, contestId, task, contestDir)
		if err != nil {
			a.tel.ReportBroken(report_atcoder_download_task, err, contestId, task)
			span.SetStatus(codes.Error, "failed to download task")
			return fmt.Errorf("download task %s: %w", task, err)
		}
	}

	return nil
}

func (a AtCoder) fetchTasks(ctx context.Context, client *resty.Client, contestId string) ([]string, error) {
	link := a.tasksUrl(contestId).String()

	res, err := client.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		a.tel.ReportBroken(report_atcoder_fetch_tasks, fmt.Errorf("fetch: %w", err), link)
		return nil, failure.New(failure.KindNetwork, "fetch tasks", err)
	}
	if res.StatusCode() == http.StatusNotFound {
		return nil, failure.Newf(failure.KindNotFound, "fetch tasks", "contest not found: %s", contestId)
	}
	if res.IsError() {
		return nil, failure.Newf(failure.KindNetwork, "fetch tasks", "unexpected status %s", res.Status())
	}

	doc, err := htmlutil.ParseDocument(res.Body())
	if err != nil {
		a.tel.ReportBroken(report_atcoder_fetch_tasks, fmt.Errorf("parse: %w", err), link)
		return nil, failure.New(failure.KindParse, "parse task list", err)
	}

	return ExtractTaskIds(htmlutil.Hrefs(doc.Find("a")), contestId), nil
}

func (a AtCoder) createContestDirectory(baseDir, contestId string) (string, error) {
	contestDir := filepath.Join(baseDir, contestId)
	err := a.fs.CreateDirectory(contestDir)
	if err != nil {
		return "", err
	}
	return contestDir, nil
}

func (a AtCoder) downloadTaskSamples(ctx context.Context, client *resty.Client, contestId, taskId, contestDir string) error {
	ctx, span := tracer.Start(ctx, "downloadTaskSamples")
	defer span.End()
	span.SetAttributes(attribute.String("task_id", taskId))

	link := a.taskUrl(contestId, taskId).String()
	a.tel.ReportDebug("fetch task", link)

	res, err := client.R().
		SetContext(ctx).
		Get(link)
	if err != nil {
		return failure.New(failure.KindNetwork, "fetch task page", err)
	}
	if res.IsError() {
		return failure.Newf(failure.KindNetwork, "fetch task page", "unexpected status %s", res.Status())
	}
	doc, err := htmlutil.ParseDocument(res.Body())
	if err != nil {
		return failure.New(failure.KindParse, "parse task page", err)
	}

	title, err := pageTitle(doc)
	if err != nil {
		return err
	}
	prefix, err := TaskPrefix(title)
	if err != nil {
		return err
	}

	testDir := filepath.Join(contestDir, prefix, "tests")
	err = a.fs.CreateDirectory(testDir)
	if err != nil {
		return err
	}

	samples, err := ExtractSamples(doc)
	if err != nil {
		return err
	}
	for _, sample := range samples {
		err = a.saveSample(testDir, sample)
		if err != nil {
			return err
		}
	}

	a.tel.ReportDebug(report_atcoder_samples_parsed, taskId, prefix, len(samples))
	return nil
}

func (a AtCoder) saveSample(testDir string, sample Sample) error {
	return a.fs.CreateFileWithContent(
		filepath.Join(testDir, sample.Filename()),
		[]byte(sample.Content),
	)
}
