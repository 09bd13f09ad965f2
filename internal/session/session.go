// Package session owns the cookie jar shared by every http client the
// toolchain creates and persists it between runs.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"sync"
	"time"

	"online-judge-toolchain/internal/components/failure"
	"online-judge-toolchain/internal/components/fsutil"
	"online-judge-toolchain/internal/components/telemetry"
	"online-judge-toolchain/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/adrg/xdg"
	"github.com/go-resty/resty/v2"
	cookiejar "github.com/juju/persistent-cookiejar"
	"golang.org/x/net/publicsuffix"
)

const (
	report_manager_save  = "manager.save"
	report_manager_load  = "manager.load"
	report_manager_clear = "manager.clear"
)

const AppDirName = "online-judge-toolchain"

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// DefaultPath is <local data dir>/online-judge-toolchain/session.json
func DefaultPath() string {
	return filepath.Join(xdg.DataHome, AppDirName, "session.json")
}

type Options struct {
	// SessionFile defaults to DefaultPath()
	SessionFile string
	// FS defaults to the real filesystem
	FS *fsutil.FS
	// Merge keeps the sessions of other services when saving, by default a
	// save replaces the whole file with the saved service only.
	Merge bool

	UserAgent string
	Timeout   time.Duration
	// HttpDump receives every request/response pair when not nil.
	HttpDump restyutil.InstrumentOutput

	Telemetry telemetry.API
}

type Manager struct {
	sessionFile string
	fs          fsutil.FS
	merge       bool

	userAgent string
	timeout   time.Duration
	httpDump  restyutil.InstrumentOutput

	tel telemetry.API

	// guards the jar, the jar is only ever touched through CreateClient,
	// Snapshot and LoadServiceSession.
	mutex sync.Mutex
	jar   *cookiejar.Jar
}

func NewManager(opts Options) (*Manager, error) {
	jar, err := cookiejar.New(&cookiejar.Options{
		PublicSuffixList: publicsuffix.List,
		NoPersist:        true,
	})
	if err != nil {
		return nil, err
	}

	m := &Manager{
		sessionFile: opts.SessionFile,
		merge:       opts.Merge,
		userAgent:   opts.UserAgent,
		timeout:     opts.Timeout,
		httpDump:    opts.HttpDump,
		tel:         opts.Telemetry,
		jar:         jar,
	}
	if m.sessionFile == "" {
		m.sessionFile = DefaultPath()
	}
	if opts.FS != nil {
		m.fs = *opts.FS
	} else {
		m.fs = fsutil.OS()
	}
	if m.userAgent == "" {
		m.userAgent = DefaultUserAgent
	}
	if m.timeout == 0 {
		m.timeout = time.Second * 30
	}
	if m.tel == nil {
		m.tel = telemetry.SlogAPI{}
	}
	m.tel = telemetry.NewScopedAPI("session", m.tel)

	return m, nil
}

func (m *Manager) SessionFile() string {
	return m.sessionFile
}

// CreateClient returns an http client that sends and stores cookies through
// the shared jar.
func (m *Manager) CreateClient() *resty.Client {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	client := resty.New()
	client.SetCookieJar(m.jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", m.userAgent)
	client.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	client.SetTimeout(m.timeout)

	telemetry.InstrumentResty(client, m.tel)
	restyutil.InstrumentClient(client, m.httpDump)

	return client
}

// Snapshot returns every unexpired cookie currently in the jar.
func (m *Manager) Snapshot() []CookieRecord {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	cookies := m.jar.AllCookies()
	records := make([]CookieRecord, len(cookies))
	for i, c := range cookies {
		records[i] = recordFromCookie(c)
	}
	return records
}

// ReadStore reads the persisted store, a missing file is an empty store.
func (m *Manager) ReadStore() (Store, error) {
	exists, err := m.fs.Exists(m.sessionFile)
	if err != nil {
		return Store{}, err
	}
	if !exists {
		return NewStore(), nil
	}

	contents, err := m.fs.ReadFile(m.sessionFile)
	if err != nil {
		return Store{}, err
	}
	store := NewStore()
	err = json.Unmarshal(contents, &store)
	if err != nil {
		return Store{}, failure.New(
			failure.KindSerialization,
			"decode session file "+m.sessionFile,
			err,
		)
	}
	if store.Services == nil {
		store.Services = map[string]ServiceSession{}
	}
	return store, nil
}

func (m *Manager) writeStore(store Store) error {
	encoded, err := json.MarshalIndent(store, "", "  ")
	if err != nil {
		return failure.New(failure.KindSerialization, "encode session store", err)
	}
	err = m.fs.CreateDirectory(filepath.Dir(m.sessionFile))
	if err != nil {
		return err
	}
	return m.fs.CreateFileWithContent(m.sessionFile, encoded)
}

// SaveServiceSession snapshots the jar under `service` and overwrites the
// session file. Sessions of other services are only kept in merge mode.
func (m *Manager) SaveServiceSession(service string) error {
	store := NewStore()
	if m.merge {
		existing, err := m.ReadStore()
		if err != nil {
			m.tel.ReportBroken(report_manager_save, fmt.Errorf("read existing store: %w", err))
			return err
		}
		store = existing
	}

	records := m.Snapshot()
	store.Services[service] = ServiceSession{Cookies: records}

	err := m.writeStore(store)
	if err != nil {
		m.tel.ReportBroken(report_manager_save, err, service)
		return err
	}

	m.tel.ReportDebug("saved session", service, len(records), m.sessionFile)
	return nil
}

// LoadServiceSession seeds the jar with the cookies persisted for
// `service`. found is false when there is nothing persisted for it.
func (m *Manager) LoadServiceSession(service string) (found bool, err error) {
	store, err := m.ReadStore()
	if err != nil {
		m.tel.ReportBroken(report_manager_load, err, service)
		return false, err
	}
	saved, ok := store.Services[service]
	if !ok {
		return false, nil
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, record := range saved.Cookies {
		if record.Domain == "" {
			m.tel.ReportWarning(report_manager_load, "skipped cookie without a domain", record.Name)
			continue
		}
		cookie, link := record.cookie()
		u, err := url.Parse(link)
		if err != nil {
			m.tel.ReportWarning(report_manager_load, fmt.Errorf("cookie url: %w", err), record.Name)
			continue
		}
		m.jar.SetCookies(u, []*http.Cookie{cookie})
	}

	m.tel.ReportDebug("loaded session", service, len(saved.Cookies))
	return true, nil
}

// ClearServiceSession removes `service` from the session file, it is not an
// error if the service was never saved.
func (m *Manager) ClearServiceSession(service string) error {
	store, err := m.ReadStore()
	if err != nil {
		m.tel.ReportBroken(report_manager_clear, err, service)
		return err
	}
	if _, ok := store.Services[service]; !ok {
		return nil
	}
	delete(store.Services, service)
	return m.writeStore(store)
}
