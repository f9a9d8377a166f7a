/*
Package app links together all the extensions to construct the treasury
application.
*/
package app

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/iov-one/treasury"
	"github.com/iov-one/treasury/app"
	"github.com/iov-one/treasury/errors"
	"github.com/iov-one/treasury/store/iavl"
	"github.com/iov-one/treasury/x"
	"github.com/iov-one/treasury/x/control"
	"github.com/iov-one/treasury/x/exchange"
	"github.com/iov-one/treasury/x/schedule"
	"github.com/iov-one/treasury/x/sweep"
	"github.com/iov-one/treasury/x/swap"
	"github.com/iov-one/treasury/x/token"
	"github.com/iov-one/treasury/x/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tendermint/tendermint/libs/log"
)

// Buckets groups the storage of all extensions.
type Buckets struct {
	Control  *control.Bucket
	Schedule *schedule.StateBucket
	Ledger   *token.Ledger
	Exchange *exchange.Router
}

// NewBuckets returns storage instances for all extensions.
func NewBuckets() Buckets {
	ledger := token.NewLedger(token.NewRegistry())
	return Buckets{
		Control:  control.NewBucket(),
		Schedule: schedule.NewStateBucket(),
		Ledger:   ledger,
		Exchange: exchange.NewRouter(ledger, exchange.NewPairBucket()),
	}
}

// Authenticator returns the authentication used by the treasury. The
// caller is declared by whoever executes the operation.
func Authenticator() x.Authenticator {
	return x.CallerAuth{}
}

// Chain returns a chain of decorators, to handle logging, recovery,
// metrics and savepoints.
func Chain(m *utils.Metrics) app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		m,
		utils.NewActionTagger(),
		utils.NewSavepoint(),
	)
}

// Router returns a router dispatching all operations of the treasury.
func Router(authFn x.Authenticator, b Buckets) *app.Router {
	r := app.NewRouter()
	authorize := control.Authorizer(authFn, b.Control)
	deployment := schedule.NewDeployment(b.Schedule)

	control.RegisterRoutes(r, authFn, b.Control)
	schedule.RegisterRoutes(r, b.Ledger, b.Schedule)
	sweep.RegisterRoutes(r, authorize, b.Ledger, deployment)
	swap.RegisterRoutes(r, authorize, b.Ledger, b.Exchange, deployment)
	token.RegisterRoutes(r, authorize, b.Ledger.Registry())
	return r
}

// Initializers returns the genesis initializers of all extensions, in the
// order they must run. Tokens are registered before any pair or
// configuration refers to them.
func Initializers(b Buckets) treasury.Initializer {
	return app.ChainInitializers(
		&control.Initializer{Bucket: b.Control},
		&token.Initializer{Ledger: b.Ledger},
		&exchange.Initializer{Router: b.Exchange},
		&schedule.Initializer{State: b.Schedule},
		&sweep.Initializer{},
		&swap.Initializer{},
	)
}

// Stack wires up a standard router with a standard decorator chain.
func Stack(b Buckets, m *utils.Metrics) treasury.Handler {
	authFn := Authenticator()
	return Chain(m).WithHandler(Router(authFn, b))
}

// Node is a treasury instance running over a persistent store.
type Node struct {
	*app.Executor
	Buckets Buckets
	store   iavl.CommitStore
}

// NewNode returns a treasury instance persisting its state to given
// database. An empty path keeps the state in memory. Metrics are
// registered with given registerer, nil disables them.
func NewNode(dbPath string, logger log.Logger, reg prometheus.Registerer) (*Node, error) {
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	if err := kv.LoadLatestVersion(); err != nil {
		kv.Close()
		return nil, err
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m, err := utils.NewMetrics(reg)
	if err != nil {
		kv.Close()
		return nil, err
	}
	b := NewBuckets()
	return &Node{
		Executor: app.NewExecutor(kv.Adapter(), Stack(b, m), logger),
		Buckets:  b,
		store:    kv,
	}, nil
}

// Execute runs the operation and persists its result.
func (n *Node) Execute(ctx treasury.Context, caller treasury.Address, msg treasury.Msg) (*treasury.DeliverResult, error) {
	res, err := n.Executor.Execute(ctx, caller, msg)
	if err != nil {
		return nil, err
	}
	if _, err := n.store.Commit(); err != nil {
		return nil, errors.Wrap(err, "commit")
	}
	return res, nil
}

// InitGenesis loads the genesis and persists the initial state. It fails
// if the state was already initialized.
func (n *Node) InitGenesis(gen *app.Genesis) error {
	if v, err := n.store.LatestVersion(); err != nil {
		return err
	} else if v.Version != 0 {
		return errors.Wrapf(errors.ErrState, "already initialized at version %d", v.Version)
	}
	if err := n.Executor.InitGenesis(gen, Initializers(n.Buckets)); err != nil {
		return err
	}
	if _, err := n.store.Commit(); err != nil {
		return errors.Wrap(err, "commit")
	}
	return nil
}

// Close releases the database.
func (n *Node) Close() {
	n.store.Close()
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path.
func CommitKVStore(dbPath string) (iavl.CommitStore, error) {
	// memory backed case, just for testing
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	// Expand the path fully
	path, err := filepath.Abs(dbPath)
	if err != nil {
		return iavl.CommitStore{}, fmt.Errorf("invalid database name: %s", path)
	}

	// Some external calls accidently add a ".db", which is now removed
	path = strings.TrimSuffix(path, filepath.Ext(path))

	// Split the database name into it's components (dir, name)
	dir := filepath.Dir(path)
	name := filepath.Base(path)
	return iavl.NewCommitStore(dir, name)
}
