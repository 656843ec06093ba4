package main

import (
	"flag"
	"time"

	"github.com/ldsec/mnistNN/mnistClear/protocols/centralized"
	"github.com/ldsec/mnistNN/mnistClear/protocols/common"
	"github.com/ldsec/mnistNN/mnistClear/utils"
	"go.dedis.ch/onet/v3/log"
)

func main() {
	config := flag.String("config", "", "TOML settings file")
	train := flag.String("train", "", "training csv file")
	test := flag.String("test", "", "test csv file, hold-out split of the training set if empty")
	niter := flag.Int("niter", common.NITER, "number of gradient descent iterations")
	lr := flag.Float64("lr", common.LEARN_RATE, "learning rate")
	hidden := flag.Int("hidden", common.NHIDDEN, "width of the hidden layer")
	seed := flag.Int64("seed", common.SEED, "seed of the weights initialization")
	logEvery := flag.Int("log-every", common.LOG_EVERY, "log the training accuracy every n iterations, 0 disables")
	debug := flag.Int("debug", 1, "debug level")
	flag.Parse()

	sts := common.NewMnistSettings()
	if *config != "" {
		var err error
		sts, err = common.LoadSettings(*config)
		log.ErrFatal(err, "loading", *config)
	}

	// command line flags override the settings file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "train":
			sts.TrainFile = *train
		case "test":
			sts.TestFile = *test
		case "niter":
			sts.Niter = *niter
		case "lr":
			sts.LearnRate = *lr
		case "hidden":
			sts.Nhidden = *hidden
		case "seed":
			sts.Seed = *seed
		case "log-every":
			sts.LogEvery = *logEvery
		case "debug":
			sts.Debug = *debug
		}
	})
	log.ErrFatal(sts.Validate())
	log.SetDebugVisible(sts.Debug)
	if sts.TrainFile == "" {
		log.Fatal("no training file, use -train or train_file")
	}

	startLoad := time.Now()
	trainData, testData := loadData(sts)
	log.Lvlf1("Loaded %d training and %d test samples in %s", trainData.NSamples(), testData.NSamples(), time.Since(startLoad))

	startTrain := time.Now()
	res, err := centralized.TrainWithSettings(trainData.X, trainData.Y, sts)
	log.ErrFatal(err, "training")
	timeTrain := time.Since(startTrain)
	log.Lvlf1("Training: %s (%d iterations)", timeTrain, sts.Niter)

	trainAcc, _, _, _, err := centralized.RunMnistPredictionTest(res.Params, trainData.X, trainData.Y, sts.Micro)
	log.ErrFatal(err)
	accuracy, precision, recall, fscore, err := centralized.RunMnistPredictionTest(res.Params, testData.X, testData.Y, sts.Micro)
	log.ErrFatal(err)
	log.Infof("Train accuracy: %.2f %%", 100*trainAcc)
	log.Infof("Test accuracy: %.2f %%, precision: %.2f %%, recall: %.2f %%, fscore: %.2f %%",
		100*accuracy, 100*precision, 100*recall, 100*fscore)

	summary, err := centralized.Summarize(res.History)
	log.ErrFatal(err)

	if sts.ReportFile != "" {
		report := centralized.Report{
			Nhidden:       sts.Nhidden,
			Niter:         sts.Niter,
			LearnRate:     sts.LearnRate,
			Seed:          sts.Seed,
			Nsamples:      trainData.NSamples(),
			Duration:      timeTrain.String(),
			TrainAccuracy: trainAcc,
			TestAccuracy:  accuracy,
			TestPrecision: precision,
			TestRecall:    recall,
			TestFscore:    fscore,
			History:       summary,
		}
		log.ErrFatal(centralized.WriteReport(sts.ReportFile, report), "writing report")
	}

	if sts.PlotFile != "" && len(res.History) > 0 {
		iterations := make([]float64, len(res.History))
		acc := make([]float64, len(res.History))
		loss := make([]float64, len(res.History))
		for i, p := range res.History {
			iterations[i], acc[i], loss[i] = float64(p.Iteration), p.Accuracy, p.Loss
		}
		if err := utils.PlotHistory(iterations, acc, loss, sts.PlotFile); err != nil {
			log.Warn("plotting history:", err)
		}
	}

	if sts.HistogramFile != "" {
		if err := utils.Histogram(res.Params.W1.RawMatrix().Data, sts.HistogramFile); err != nil {
			log.Warn("plotting weights:", err)
		}
	}
}

// loadData returns the training set and the test set, the latter being the last
// hold-out group of the training file when no test file is configured
func loadData(sts *common.MnistSettings) (common.MnistDataset, common.MnistDataset) {
	loader, err := common.GetLoader(sts)
	log.ErrFatal(err)
	data, err := loader.Load()
	log.ErrFatal(err, "loading", sts.TrainFile)

	testLoader, err := common.GetTestLoader(sts)
	log.ErrFatal(err)
	if testLoader != nil {
		testData, err := testLoader.Load()
		log.ErrFatal(err, "loading", sts.TestFile)
		return data, testData
	}

	if sts.KFold <= 1 {
		log.Warn("no test file and kfold <= 1, evaluating on the training set")
	}
	kfold := sts.KFold
	if kfold == 0 {
		kfold = 1
	}
	trainData, testData, err := data.Partition(kfold, kfold-1)
	log.ErrFatal(err, "partitioning")
	return trainData, testData
}
