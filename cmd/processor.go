package main

import (
	"context"
	"sync"

	"img2pdf/internal/domain/entities"
	"img2pdf/internal/domain/repositories"
	usecases "img2pdf/internal/usecase"
)

// ApplicationProcessor запускает конвертации в фоне, чтобы интерфейс продолжал отрисовываться
type ApplicationProcessor struct {
	images     *usecases.ManageImagesUseCase
	conversion *usecases.ProcessConversionUseCase
	logger     repositories.Logger

	// Graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApplicationProcessor создает новый процессор приложения
func NewApplicationProcessor(
	images *usecases.ManageImagesUseCase,
	conversion *usecases.ProcessConversionUseCase,
	logger repositories.Logger,
) *ApplicationProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	return &ApplicationProcessor{
		images:     images,
		conversion: conversion,
		logger:     logger,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// StartConversion снимает копию списка и конвертирует ее в отдельной горутине.
// Изменения списка во время конвертации на нее не влияют.
func (p *ApplicationProcessor) StartConversion(name, destination string) {
	request := entities.NewConversionRequest(p.images.Entries(), destination, name)

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()

		if _, err := p.conversion.Execute(p.ctx, request); err != nil && p.logger != nil {
			p.logger.Error("%s", usecases.ErrorMessage(err))
		}
	}()
}

// Shutdown отменяет текущую конвертацию и дожидается ее завершения
func (p *ApplicationProcessor) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
