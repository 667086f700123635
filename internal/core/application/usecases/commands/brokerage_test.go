package commands_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"freight/internal/adapters/out/hashing"
	"freight/internal/adapters/out/memory"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/customer"
	"freight/internal/core/domain/model/driver"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type uowFactory struct{ inner ports.UnitOfWorkFactory }

func (f uowFactory) Create() commands.UoW { return f.inner.Create() }

type orderUoWFactory struct{ inner ports.UnitOfWorkFactory }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.inner.Create() }

type driverUoWFactory struct{ inner ports.UnitOfWorkFactory }

func (f driverUoWFactory) Create() commands.DriverUoW { return f.inner.Create() }

type customerUoWFactory struct{ inner ports.UnitOfWorkFactory }

func (f customerUoWFactory) Create() commands.CustomerUoW { return f.inner.Create() }

// hookedUoW runs beforeCommit right before committing, which lets a test
// interleave another transaction.
type hookedUoW struct {
	ports.UnitOfWork
	beforeCommit func()
}

func (u hookedUoW) Commit(ctx context.Context) error {
	u.beforeCommit()
	return u.UnitOfWork.Commit(ctx)
}

type hookedUoWFactory struct {
	inner        ports.UnitOfWorkFactory
	beforeCommit func()
}

func (f hookedUoWFactory) Create() commands.UoW {
	return hookedUoW{UnitOfWork: f.inner.Create(), beforeCommit: f.beforeCommit}
}

type BrokerageTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *kernel.FixedClock
	factory *memory.UnitOfWorkFactory
	engine  services.MatchingEngine
	hasher  ports.PasswordHasher

	createOrder      commands.CreateOrderCommandHandler
	registerDriver   commands.RegisterDriverCommandHandler
	generate         commands.GenerateSolutionsCommandHandler
	confirmSolution  commands.ConfirmSolutionCommandHandler
	confirmAgreement commands.ConfirmAgreementCommandHandler
	confirmPayment   commands.ConfirmPaymentCommandHandler
	complete         commands.CompleteOrderCommandHandler
	releaseStale     commands.ReleaseStaleCandidatesCommandHandler
	signUp           commands.SignUpCommandHandler
}

func TestBrokerageTestSuite(t *testing.T) {
	suite.Run(t, new(BrokerageTestSuite))
}

func (s *BrokerageTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = &kernel.FixedClock{At: time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)}
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore(), nil, nil)
	s.engine = services.NewMatchingEngine(services.NewPricingEngine(), services.FixedTimeEstimator{Hours: 5})
	s.hasher = hashing.NewBcryptHasher(bcrypt.MinCost)

	all := uowFactory{inner: s.factory}
	s.createOrder = commands.NewCreateOrderCommandHandler(orderUoWFactory{inner: s.factory}, s.clock)
	s.registerDriver = commands.NewRegisterDriverCommandHandler(driverUoWFactory{inner: s.factory})
	s.generate = commands.NewGenerateSolutionsCommandHandler(all, s.engine, s.clock, 0)
	s.confirmSolution = commands.NewConfirmSolutionCommandHandler(all, s.clock)
	s.confirmAgreement = commands.NewConfirmAgreementCommandHandler(orderUoWFactory{inner: s.factory}, s.clock)
	s.confirmPayment = commands.NewConfirmPaymentCommandHandler(orderUoWFactory{inner: s.factory}, s.clock)
	s.complete = commands.NewCompleteOrderCommandHandler(all, s.clock)
	s.releaseStale = commands.NewReleaseStaleCandidatesCommandHandler(all, 100)
	s.signUp = commands.NewSignUpCommandHandler(customerUoWFactory{inner: s.factory}, s.hasher, s.clock)
}

func (s *BrokerageTestSuite) repos() ports.UnitOfWork {
	return s.factory.Create()
}

func (s *BrokerageTestSuite) addDriver(qualification string) kernel.UUID {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterDriverCommand(id, "Petr", "Sidorov", "", qualification, 3)
	s.Require().NoError(err)
	s.Require().NoError(s.registerDriver.Handle(s.ctx, cmd))
	return id
}

func (s *BrokerageTestSuite) addOrder(customerID kernel.UUID, cargoType string) kernel.UUID {
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(id, customerID,
		commands.CargoSpec{Type: cargoType, Width: 1, Length: 2, Height: 1, Weight: 30},
		"Moscow, Lenina 1", "Tver, Sovetskaya 7", nil)
	s.Require().NoError(err)
	s.Require().NoError(s.createOrder.Handle(s.ctx, cmd))
	return id
}

func (s *BrokerageTestSuite) orderCmd(customerID, orderID kernel.UUID) commands.OrderCommand {
	cmd, err := commands.NewOrderCommand(customerID, orderID)
	s.Require().NoError(err)
	return cmd
}

func (s *BrokerageTestSuite) loadOrder(customerID, orderID kernel.UUID) *order.Order {
	o, err := s.repos().OrderRepository().Get(s.ctx, customerID, orderID)
	s.Require().NoError(err)
	return o
}

func (s *BrokerageTestSuite) loadDriver(id kernel.UUID) *driver.Driver {
	d, err := s.repos().DriverRepository().Get(s.ctx, id)
	s.Require().NoError(err)
	return d
}

func (s *BrokerageTestSuite) solutionsOf(orderID kernel.UUID) []kernel.UUID {
	list, err := s.repos().SolutionRepository().GetAllByOrder(s.ctx, orderID)
	s.Require().NoError(err)
	ids := make([]kernel.UUID, 0, len(list))
	for _, sol := range list {
		ids = append(ids, sol.ID())
	}
	return ids
}

func (s *BrokerageTestSuite) solutionOfDriver(orderID, driverID kernel.UUID) kernel.UUID {
	list, err := s.repos().SolutionRepository().GetAllByOrder(s.ctx, orderID)
	s.Require().NoError(err)
	for _, sol := range list {
		if sol.DriverID().IsEqual(driverID) {
			return sol.ID()
		}
	}
	s.FailNow("no solution proposes the driver")
	return kernel.UUID{}
}

func (s *BrokerageTestSuite) confirm(customerID, orderID, solutionID kernel.UUID) error {
	cmd, err := commands.NewConfirmSolutionCommand(customerID, orderID, solutionID)
	s.Require().NoError(err)
	return s.confirmSolution.Handle(s.ctx, cmd)
}

func (s *BrokerageTestSuite) matchAndConfirm(customerID, orderID kernel.UUID) {
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID)))
	ids := s.solutionsOf(orderID)
	s.Require().NotEmpty(ids)
	cmd, err := commands.NewConfirmSolutionCommand(customerID, orderID, ids[0])
	s.Require().NoError(err)
	s.Require().NoError(s.confirmSolution.Handle(s.ctx, cmd))
}

func (s *BrokerageTestSuite) TestGenerateSolutions_PricesAndReservesDrivers() {
	customerID := kernel.NewUUID()
	driverID := s.addDriver("above_average")
	orderID := s.addOrder(customerID, "casual")

	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID)))

	list, err := s.repos().SolutionRepository().GetAllByOrder(s.ctx, orderID)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.InDelta(700.0, list[0].Cost(), 1e-9)
	s.Equal(5, list[0].Time())
	s.Equal(driverID, list[0].DriverID())
	s.Equal(driver.Candidate, s.loadDriver(driverID).Status())
	s.Equal(order.WaitDecision, s.loadOrder(customerID, orderID).Status())
}

func (s *BrokerageTestSuite) TestGenerateSolutions_RespectsDriverLimit() {
	customerID := kernel.NewUUID()
	for range 12 {
		s.addDriver("low")
	}
	orderID := s.addOrder(customerID, "dangerous")

	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID)))
	s.Len(s.solutionsOf(orderID), commands.DefaultMatchingDriverLimit)

	limited := commands.NewGenerateSolutionsCommandHandler(uowFactory{inner: s.factory}, s.engine, s.clock, 3)
	otherID := s.addOrder(customerID, "casual")
	s.Require().NoError(limited.Handle(s.ctx, s.orderCmd(customerID, otherID)))
	s.Len(s.solutionsOf(otherID), 3)
}

func (s *BrokerageTestSuite) TestGenerateSolutions_WithoutDriversLeavesOrderInProcess() {
	customerID := kernel.NewUUID()
	orderID := s.addOrder(customerID, "casual")

	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID)))

	s.Empty(s.solutionsOf(orderID))
	s.Equal(order.InProcess, s.loadOrder(customerID, orderID).Status())
}

func (s *BrokerageTestSuite) TestGenerateSolutions_NeverProposesBusyDrivers() {
	customerID := kernel.NewUUID()
	busyID := s.addDriver("high")
	first := s.addOrder(customerID, "fragile")
	s.matchAndConfirm(customerID, first)
	s.Require().Equal(driver.Busy, s.loadDriver(busyID).Status())

	freeID := s.addDriver("low")
	second := s.addOrder(customerID, "fragile")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, second)))

	list, err := s.repos().SolutionRepository().GetAllByOrder(s.ctx, second)
	s.Require().NoError(err)
	s.Require().Len(list, 1)
	s.Equal(freeID, list[0].DriverID())
}

func (s *BrokerageTestSuite) TestGenerateSolutions_CandidatesStayProposable() {
	customerID := kernel.NewUUID()
	driverID := s.addDriver("below_average")
	first := s.addOrder(customerID, "casual")
	second := s.addOrder(customerID, "corruptible")

	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, first)))
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, second)))

	s.Len(s.solutionsOf(first), 1)
	s.Len(s.solutionsOf(second), 1)
	d := s.loadDriver(driverID)
	s.Equal(driver.Candidate, d.Status())
	s.Equal(2, d.Version())
}

func (s *BrokerageTestSuite) TestGenerateSolutions_Twice() {
	customerID := kernel.NewUUID()
	s.addDriver("low")
	orderID := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID)))

	err := s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID))

	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	s.Len(s.solutionsOf(orderID), 1)
}

func (s *BrokerageTestSuite) TestConfirmSolution_ClearsSolutionsAndOccupiesDriver() {
	customerID := kernel.NewUUID()
	chosenID := s.addDriver("high")
	otherID := s.addDriver("low")
	orderID := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID)))

	list, err := s.repos().SolutionRepository().GetAllByOrder(s.ctx, orderID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	chosen := list[1]
	s.Require().Equal(chosenID, chosen.DriverID())

	cmd, err := commands.NewConfirmSolutionCommand(customerID, orderID, chosen.ID())
	s.Require().NoError(err)
	s.Require().NoError(s.confirmSolution.Handle(s.ctx, cmd))

	o := s.loadOrder(customerID, orderID)
	s.Equal(order.WaitContractSigning, o.Status())
	s.Require().NotNil(o.DriverID())
	s.Equal(chosenID, *o.DriverID())
	s.InDelta(chosen.Cost(), *o.Cost(), 1e-9)
	s.Equal(chosen.Time(), *o.Time())
	s.Empty(s.solutionsOf(orderID))
	s.Equal(driver.Busy, s.loadDriver(chosenID).Status())
	s.Equal(driver.Candidate, s.loadDriver(otherID).Status())
}

func (s *BrokerageTestSuite) TestConfirmSolution_ForeignSolution() {
	customerID := kernel.NewUUID()
	s.addDriver("low")
	first := s.addOrder(customerID, "casual")
	second := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, first)))
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, second)))
	foreign := s.solutionsOf(second)[0]

	cmd, err := commands.NewConfirmSolutionCommand(customerID, first, foreign)
	s.Require().NoError(err)
	err = s.confirmSolution.Handle(s.ctx, cmd)

	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Equal(order.WaitDecision, s.loadOrder(customerID, first).Status())
	s.Len(s.solutionsOf(second), 1)
}

func (s *BrokerageTestSuite) TestConfirmSolution_Twice() {
	customerID := kernel.NewUUID()
	s.addDriver("low")
	orderID := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID)))
	solutionID := s.solutionsOf(orderID)[0]
	s.Require().NoError(s.confirm(customerID, orderID, solutionID))

	err := s.confirm(customerID, orderID, solutionID)

	var transitionErr *errs.InvalidTransitionError
	s.Require().ErrorAs(err, &transitionErr)
	s.Equal("wait_contract_signing", transitionErr.From)
	s.Equal(order.WaitContractSigning, s.loadOrder(customerID, orderID).Status())
}

func (s *BrokerageTestSuite) TestConfirmSolution_AfterPayment() {
	customerID := kernel.NewUUID()
	s.addDriver("low")
	orderID := s.addOrder(customerID, "casual")
	cmd := s.orderCmd(customerID, orderID)
	s.matchAndConfirm(customerID, orderID)
	s.Require().NoError(s.confirmAgreement.Handle(s.ctx, cmd))
	s.Require().NoError(s.confirmPayment.Handle(s.ctx, cmd))

	err := s.confirm(customerID, orderID, kernel.NewUUID())

	s.Require().ErrorIs(err, errs.ErrInvalidTransition)
	s.Equal(order.InProgress, s.loadOrder(customerID, orderID).Status())
}

func (s *BrokerageTestSuite) TestCompleteOrder_DriverProposedElsewhereStaysCandidate() {
	customerID := kernel.NewUUID()
	driverID := s.addDriver("high")
	first := s.addOrder(customerID, "casual")
	second := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, first)))
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, second)))

	cmd := s.orderCmd(customerID, first)
	s.Require().NoError(s.confirm(customerID, first, s.solutionOfDriver(first, driverID)))
	s.Require().NoError(s.confirmAgreement.Handle(s.ctx, cmd))
	s.Require().NoError(s.confirmPayment.Handle(s.ctx, cmd))
	s.Require().NoError(s.complete.Handle(s.ctx, cmd))

	s.Equal(driver.Candidate, s.loadDriver(driverID).Status())
	s.Len(s.solutionsOf(second), 1)

	released, err := s.releaseStale.Handle(s.ctx, commands.NewReleaseStaleCandidatesCommand())
	s.Require().NoError(err)
	s.Zero(released)

	s.Require().NoError(s.confirm(customerID, second, s.solutionOfDriver(second, driverID)))
	s.Equal(driver.Busy, s.loadDriver(driverID).Status())
	s.Equal(order.WaitContractSigning, s.loadOrder(customerID, second).Status())
}

func (s *BrokerageTestSuite) TestConfirmAgreement_FromInProcess() {
	customerID := kernel.NewUUID()
	orderID := s.addOrder(customerID, "casual")

	err := s.confirmAgreement.Handle(s.ctx, s.orderCmd(customerID, orderID))

	var transitionErr *errs.InvalidTransitionError
	s.Require().ErrorAs(err, &transitionErr)
	s.Equal("in_process", transitionErr.From)
	s.Equal(order.InProcess, s.loadOrder(customerID, orderID).Status())
}

func (s *BrokerageTestSuite) TestOwnershipGuard() {
	owner := kernel.NewUUID()
	intruder := kernel.NewUUID()
	s.addDriver("low")
	orderID := s.addOrder(owner, "casual")

	err := s.generate.Handle(s.ctx, s.orderCmd(intruder, orderID))
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	s.matchAndConfirm(owner, orderID)
	err = s.confirmAgreement.Handle(s.ctx, s.orderCmd(intruder, orderID))
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Equal(order.WaitContractSigning, s.loadOrder(owner, orderID).Status())
}

func (s *BrokerageTestSuite) TestFullLifecycle() {
	customerID := kernel.NewUUID()
	driverID := s.addDriver("above_average")
	orderID := s.addOrder(customerID, "casual")
	cmd := s.orderCmd(customerID, orderID)

	s.matchAndConfirm(customerID, orderID)
	s.Require().NoError(s.confirmAgreement.Handle(s.ctx, cmd))

	paidAt := s.clock.At.Add(time.Hour)
	s.clock.At = paidAt
	s.Require().NoError(s.confirmPayment.Handle(s.ctx, cmd))
	o := s.loadOrder(customerID, orderID)
	s.Equal(order.InProgress, o.Status())
	s.Require().NotNil(o.ExpectedDate())
	s.Equal(paidAt.Add(5*time.Hour), *o.ExpectedDate())

	readyAt := paidAt.Add(6 * time.Hour)
	s.clock.At = readyAt
	s.Require().NoError(s.complete.Handle(s.ctx, cmd))
	o = s.loadOrder(customerID, orderID)
	s.Equal(order.Ready, o.Status())
	s.Require().NotNil(o.ReadyDate())
	s.Equal(readyAt, *o.ReadyDate())
	s.Equal(driver.Waiting, s.loadDriver(driverID).Status())

	expectation, err := o.Expectation()
	s.Require().NoError(err)
	s.False(expectation.Early)
	s.Equal(1, expectation.Hours())

	err = s.complete.Handle(s.ctx, cmd)
	var transitionErr *errs.InvalidTransitionError
	s.Require().ErrorAs(err, &transitionErr)
	s.Equal("ready", transitionErr.From)
}

func (s *BrokerageTestSuite) TestConcurrentRoundsReservingSameDriver() {
	customerID := kernel.NewUUID()
	driverID := s.addDriver("high")
	first := s.addOrder(customerID, "casual")
	second := s.addOrder(customerID, "casual")

	interleaved := hookedUoWFactory{inner: s.factory, beforeCommit: func() {
		s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, second)))
	}}
	racing := commands.NewGenerateSolutionsCommandHandler(interleaved, s.engine, s.clock, 0)

	err := racing.Handle(s.ctx, s.orderCmd(customerID, first))

	s.Require().ErrorIs(err, errs.ErrConcurrentModification)
	s.Equal(order.InProcess, s.loadOrder(customerID, first).Status())
	s.Empty(s.solutionsOf(first))
	s.Equal(order.WaitDecision, s.loadOrder(customerID, second).Status())
	s.Len(s.solutionsOf(second), 1)
	d := s.loadDriver(driverID)
	s.Equal(driver.Candidate, d.Status())
	s.Equal(1, d.Version())

	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, first)))
	s.Len(s.solutionsOf(first), 1)
}

func (s *BrokerageTestSuite) TestMatchingRoundRacingStaleCandidateRelease() {
	customerID := kernel.NewUUID()
	chosenID := s.addDriver("high")
	staleID := s.addDriver("low")
	first := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, first)))
	s.Require().NoError(s.confirm(customerID, first, s.solutionOfDriver(first, chosenID)))
	s.Require().Equal(driver.Candidate, s.loadDriver(staleID).Status())

	second := s.addOrder(customerID, "casual")
	interleaved := hookedUoWFactory{inner: s.factory, beforeCommit: func() {
		released, err := s.releaseStale.Handle(s.ctx, commands.NewReleaseStaleCandidatesCommand())
		s.Require().NoError(err)
		s.Require().Equal(1, released)
	}}
	racing := commands.NewGenerateSolutionsCommandHandler(interleaved, s.engine, s.clock, 0)

	err := racing.Handle(s.ctx, s.orderCmd(customerID, second))

	s.Require().ErrorIs(err, errs.ErrConcurrentModification)
	s.Equal(driver.Waiting, s.loadDriver(staleID).Status())
	s.Empty(s.solutionsOf(second))
	s.Equal(order.InProcess, s.loadOrder(customerID, second).Status())

	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, second)))
	s.Equal(driver.Candidate, s.loadDriver(staleID).Status())
	s.Require().NoError(s.confirm(customerID, second, s.solutionOfDriver(second, staleID)))
	s.Equal(driver.Busy, s.loadDriver(staleID).Status())
}

func (s *BrokerageTestSuite) TestReleaseStaleCandidates_BatchSkipsProposedCandidates() {
	customerID := kernel.NewUUID()
	for range 3 {
		s.addDriver("low")
	}
	pending := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, pending)))

	staleID := s.addDriver("low")
	chosenID := s.addDriver("high")
	decided := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, decided)))
	s.Require().NoError(s.confirm(customerID, decided, s.solutionOfDriver(decided, chosenID)))

	release := commands.NewReleaseStaleCandidatesCommandHandler(uowFactory{inner: s.factory}, 2)
	released, err := release.Handle(s.ctx, commands.NewReleaseStaleCandidatesCommand())

	s.Require().NoError(err)
	s.Equal(1, released)
	s.Equal(driver.Waiting, s.loadDriver(staleID).Status())
	s.Len(s.solutionsOf(pending), 3)
}

func (s *BrokerageTestSuite) TestReleaseStaleCandidates() {
	customerID := kernel.NewUUID()
	s.addDriver("high")
	s.addDriver("low")
	orderID := s.addOrder(customerID, "casual")
	s.Require().NoError(s.generate.Handle(s.ctx, s.orderCmd(customerID, orderID)))

	released, err := s.releaseStale.Handle(s.ctx, commands.NewReleaseStaleCandidatesCommand())
	s.Require().NoError(err)
	s.Zero(released)

	list, err := s.repos().SolutionRepository().GetAllByOrder(s.ctx, orderID)
	s.Require().NoError(err)
	s.Require().Len(list, 2)
	cmd, err := commands.NewConfirmSolutionCommand(customerID, orderID, list[0].ID())
	s.Require().NoError(err)
	s.Require().NoError(s.confirmSolution.Handle(s.ctx, cmd))

	released, err = s.releaseStale.Handle(s.ctx, commands.NewReleaseStaleCandidatesCommand())
	s.Require().NoError(err)
	s.Equal(1, released)
	s.Equal(driver.Waiting, s.loadDriver(list[1].DriverID()).Status())
	s.Equal(driver.Busy, s.loadDriver(list[0].DriverID()).Status())
}

func (s *BrokerageTestSuite) TestSignUpAndLogin() {
	signUp := func(email, phone string) error {
		cmd, err := commands.NewSignUpCommand(kernel.NewUUID(), "Anna", "Ivanova", "Petrovna", email, phone, "secret1")
		s.Require().NoError(err)
		return s.signUp.Handle(s.ctx, cmd)
	}

	s.Require().NoError(signUp("Anna@Example.com", "+7 (999) 000-00-01"))
	s.Require().ErrorIs(signUp("anna@example.com", "+79990000002"), customer.ErrDuplicateCustomer)
	s.Require().ErrorIs(signUp("other@example.com", "+79990000001"), customer.ErrDuplicateCustomer)

	login := queries.NewLoginQueryHandler(s.repos().CustomerRepository(), s.hasher)
	for _, credential := range []string{"anna@example.com", "+79990000001"} {
		q, err := queries.NewLoginQuery(credential, "secret1")
		s.Require().NoError(err)
		resp, err := login.Handle(s.ctx, q)
		s.Require().NoError(err, credential)
		s.Equal("Anna Petrovna Ivanova", resp.FullName)
		s.Equal("anna@example.com", resp.Email)
	}

	q, err := queries.NewLoginQuery("anna@example.com", "wrong-password")
	s.Require().NoError(err)
	_, err = login.Handle(s.ctx, q)
	s.Require().ErrorIs(err, queries.ErrWrongCredentials)

	q, err = queries.NewLoginQuery("nobody@example.com", "secret1")
	s.Require().NoError(err)
	_, err = login.Handle(s.ctx, q)
	s.Require().ErrorIs(err, queries.ErrWrongCredentials)
}

func (s *BrokerageTestSuite) TestSignUp_RejectsShortPassword() {
	_, err := commands.NewSignUpCommand(kernel.NewUUID(), "Anna", "Ivanova", "", "a@b.c", "+79990000001", "123")
	s.Require().ErrorIs(err, errs.ErrValueIsOutOfRange)
	s.Contains(err.Error(), fmt.Sprint(commands.MinPasswordLength))
}
